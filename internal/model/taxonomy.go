package model

// Category groups members by discipline.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Network is a social network a member can link to.
type Network struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NetworkLink is one (network, url) pair to attach to a member.
// Links with an empty URL are skipped on write.
type NetworkLink struct {
	NetworkID int64  `json:"id_network"`
	URL       string `json:"url"`
}

// MemberNetwork is a network attached to a member, with its URL.
type MemberNetwork struct {
	NetworkID int64  `json:"id_network"`
	Name      string `json:"name"`
	URL       string `json:"url"`
}
