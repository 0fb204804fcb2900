package model

import (
	"fmt"
	"github.com/dghubble/go-twitter/twitter"
)

// User is a read-only view over a tweet author payload.
type User struct {
	user *twitter.User
}

func NewUser(user *twitter.User) *User {
	return &User{user: user}
}

func (u *User) GetJson() *twitter.User {
	return u.user
}

func (u *User) GetId() string {
	return u.user.IDStr
}

func (u *User) GetIdNumber() int64 {
	return u.user.ID
}

func (u *User) GetName() string {
	return u.user.Name
}

func (u *User) GetScreenName() string {
	return u.user.ScreenName
}

func (u *User) GetDescription() string {
	return u.user.Description
}

func (u *User) GetLocation() string {
	return u.user.Location
}

func (u *User) GetUrl() string {
	return u.user.URL
}

func (u *User) GetProfileImageUrl() string {
	return u.user.ProfileImageURLHttps
}

func (u *User) GetFollowersCount() int {
	return u.user.FollowersCount
}

func (u *User) GetFriendsCount() int {
	return u.user.FriendsCount
}

func (u *User) GetStatusesCount() int {
	return u.user.StatusesCount
}

func (u *User) GetFavouritesCount() int {
	return u.user.FavouritesCount
}

func (u *User) GetCreatedAt() string {
	return u.user.CreatedAt
}

func (u *User) GetLang() string {
	return u.user.Lang
}

func (u *User) IsVerified() bool {
	return u.user.Verified
}

func (u *User) IsProtected() bool {
	return u.user.Protected
}

func (u *User) GetTwitterUrl() string {
	return fmt.Sprintf("%s/%s", TwitterUrl, u.user.ScreenName)
}
