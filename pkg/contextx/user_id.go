package contextx

import "context"

// UserID is the id of the signed-in user. Deals whose sellerId equals it
// are "my deals".
type UserID string

type contextKeyUserID struct{}

func (u UserID) String() string {
	return string(u)
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	return valueFromContext[UserID](ctx, contextKeyUserID{}, "user id")
}
