package entity

import "time"

// MaxRoutesPerUser is the hard cap enforced atomically by the create
// transaction's condition expression.
const MaxRoutesPerUser = 20

// Profile is the PROFILE item, created once on identity-provider
// confirmation and mutated only by the route lifecycle transactions.
type Profile struct {
	UserID     string    `dynamodbav:"userId"`
	Email      string    `dynamodbav:"email"`
	RouteCount int       `dynamodbav:"routeCount"`
	CreatedAt  time.Time `dynamodbav:"createdAt"`
}
