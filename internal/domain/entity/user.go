package entity

import (
	"fmt"
	"time"
)

// Role is the closed set of user types. Any role value outside this set is
// treated as unknown and denied by the permission checks.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCook   Role = "cook"
	RoleFoodie Role = "foodie"
)

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	Role        Role   `json:"role" firestore:"role"`
	StoreName   string `json:"store_name,omitempty" firestore:"storeName,omitempty"` // Cook only
	Status      string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ContactLabel renders the picker label for this user. Cooks are shown as
// "Kitchen"; every other role renders as "Foodie".
func (u *User) ContactLabel() string {
	kind := "Foodie"
	if u.Role == RoleCook {
		kind = "Kitchen"
	}
	return fmt.Sprintf("%s (%s)", u.DisplayName, kind)
}
