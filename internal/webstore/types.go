package webstore

// Credentials hold the OAuth2 and store identifiers required for every
// authorized call. All four fields must be non-empty before the client
// touches the network; internal/config enforces that.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	ExtensionID  string
}

// PublishTarget selects the audience a publish request targets.
type PublishTarget string

const (
	// TargetDefault publishes to the public channel.
	TargetDefault PublishTarget = "default"
	// TargetTesters publishes to the trusted-tester channel.
	TargetTesters PublishTarget = "testers"
)

// Upload state sentinels returned by the store in HTTP 200 bodies.
const (
	UploadStateSuccess    = "SUCCESS"
	UploadStateFailure    = "FAILURE"
	UploadStateInProgress = "IN_PROGRESS"
)

const statusOK = "OK"

// ItemError describes a single problem the store found with an upload.
type ItemError struct {
	ErrorCode   string `json:"error_code"`
	ErrorDetail string `json:"error_detail"`
}

// Item is the store's JSON document describing an extension item. Fields the
// store is free to omit are left zero; callers only inspect the handful they
// care about.
type Item struct {
	Kind        string      `json:"kind,omitempty"`
	ID          string      `json:"id,omitempty"`
	PublicKey   string      `json:"publicKey,omitempty"`
	Title       string      `json:"title,omitempty"`
	Version     string      `json:"version,omitempty"`
	CRXVersion  string      `json:"crxVersion,omitempty"`
	UploadState string      `json:"uploadState,omitempty"`
	ItemError   []ItemError `json:"itemError,omitempty"`
	Status      []string    `json:"status,omitempty"`
}

// PublishResponse is the store's answer to a publish request.
type PublishResponse struct {
	Kind         string   `json:"kind,omitempty"`
	ItemID       string   `json:"item_id,omitempty"`
	Status       []string `json:"status"`
	StatusDetail []string `json:"statusDetail,omitempty"`
}
