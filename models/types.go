package models

import "time"

// Role is an enumerated account role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Category is an enumerated poll category.
type Category string

const (
	CategoryTech          Category = "TECH"
	CategoryEntertainment Category = "ENT"
	CategorySports        Category = "SPRT"
	CategoryPolitics      Category = "POL"
	CategoryLifestyle     Category = "LIFE"
	CategoryEducation     Category = "EDU"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTech,
	CategoryEntertainment,
	CategorySports,
	CategoryPolitics,
	CategoryLifestyle,
	CategoryEducation,
}

var categoryLabels = map[Category]string{
	CategoryTech:          "Technology",
	CategoryEntertainment: "Entertainment",
	CategorySports:        "Sports",
	CategoryPolitics:      "Politics",
	CategoryLifestyle:     "Lifestyle",
	CategoryEducation:     "Education",
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Identity describes the caller of an operation. The zero value is an
// anonymous caller. Identity is always threaded in explicitly; core code
// never reads it from global state.
type Identity struct {
	UserID        string
	Role          Role
	Authenticated bool
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question  string     `json:"question"`
	Category  Category   `json:"category"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Options   []string   `json:"options"`
}

// UpdatePollRequest carries partial updates; nil fields are left unchanged.
type UpdatePollRequest struct {
	Question  *string    `json:"question,omitempty"`
	Category  *Category  `json:"category,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CategoryChoice struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

type CastVoteResponse struct {
	VoteID   string `json:"vote_id"`
	OptionID string `json:"option_id"`
}

type OptionResult struct {
	OptionID   string  `json:"option_id"`
	Text       string  `json:"text"`
	VoteCount  int     `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}

type PollResults struct {
	PollID     string         `json:"poll_id"`
	Question   string         `json:"question"`
	TotalVotes int            `json:"total_votes"`
	Options    []OptionResult `json:"options"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Poll struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	CreatorID string     `json:"creator_id"`
	Category  Category   `json:"category"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type Option struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Text   string `json:"text"`
}

type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PollDetail is a poll with its options, plus the caller's own vote when
// the caller is authenticated and has voted.
type PollDetail struct {
	Poll      Poll     `json:"poll"`
	Options   []Option `json:"options"`
	Active    bool     `json:"active"`
	ExpiresIn string   `json:"expires_in,omitempty"`
	MyVote    *Vote    `json:"my_vote,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
