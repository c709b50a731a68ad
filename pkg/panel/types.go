package panel

// ServerRecord is the joined output of the aggregator: one panel server
// together with its owner's user details. Records are constructed per
// request and never cached.
type ServerRecord struct {
	// ID is the panel's numeric server identifier.
	ID int `json:"id"`

	// Name is the server's display name.
	Name string `json:"name"`

	// Description is the server's description, possibly empty.
	Description string `json:"description"`

	// OwnerUserID is the panel user id owning the server.
	OwnerUserID int `json:"owner_user_id"`

	// OwnerUsername is the owner's username, or "Unknown" when the user
	// lookup failed.
	OwnerUsername string `json:"owner_username"`

	// OwnerEmail is the owner's email, or "Unknown" when the user lookup
	// failed.
	OwnerEmail string `json:"owner_email"`

	// RAMMB is the server's memory limit in megabytes.
	RAMMB int `json:"ram_mb"`

	// DiskMB is the server's disk limit in megabytes.
	DiskMB int `json:"disk_mb"`
}

// Placeholder values substituted when an owner lookup fails.
const (
	UnknownUsername = "Unknown"
	UnknownEmail    = "Unknown"
)

// serverAttributes is the attribute block of one server in the panel's
// application API listing.
type serverAttributes struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	User        int    `json:"user"`
	Limits      struct {
		Memory int `json:"memory"`
		Disk   int `json:"disk"`
	} `json:"limits"`
}

// serverItem wraps serverAttributes the way the panel API nests them.
type serverItem struct {
	Attributes serverAttributes `json:"attributes"`
}

// pagination is the panel's paging cursor. The aggregator advances while
// CurrentPage < TotalPages.
type pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// serversPage is one page of the panel's server listing.
type serversPage struct {
	Data []serverItem `json:"data"`
	Meta struct {
		Pagination pagination `json:"pagination"`
	} `json:"meta"`
}

// userAttributes is the attribute block of one user in the panel API.
type userAttributes struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// userItem wraps userAttributes the way the panel API nests them.
type userItem struct {
	Attributes userAttributes `json:"attributes"`
}
