package user

// Identity is what the identity provider reports for a signed-in user.
// The zero value means nobody is signed in.
type Identity struct {
	OwnerID      string `json:"owner_id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (i Identity) Present() bool {
	return i.OwnerID != ""
}

// Label is the name shown to the user: display name, falling back to email.
func (i Identity) Label() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Email
}
