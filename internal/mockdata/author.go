package mockdata

import "time"

type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Author struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Avatar      string      `json:"avatar"`
	Bio         string      `json:"bio"`
	JoinDate    time.Time   `json:"join_date"`
	Followers   int         `json:"followers"`
	Following   int         `json:"following"`
	SocialLinks SocialLinks `json:"social_links"`
}
