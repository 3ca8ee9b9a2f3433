package domain

// CartItem is one line of a user's cart. A line stays in the cart with
// quantity zero after a full removal; deletion would change the response
// shape clients rely on.
type CartItem struct {
	UserID   string `db:"user_id" json:"-"`
	ItemName string `db:"item_name" json:"itemName"`
	Quantity int    `db:"quantity" json:"quantity"`
}
