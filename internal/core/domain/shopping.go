package domain

// ShoppingEventState is a shopping event's position in the shop workflow.
type ShoppingEventState string

const (
	ShoppingStateCreated          ShoppingEventState = "CREATED"
	ShoppingStateInShop           ShoppingEventState = "IN_SHOP"
	ShoppingStateFinalDocsPending ShoppingEventState = "FINAL_DOCS_PENDING"
	ShoppingStateReleased         ShoppingEventState = "RELEASED"
	ShoppingStateCancelled        ShoppingEventState = "CANCELLED"
)

// ShoppingInitialState is the state every shopping event is spawned in.
const ShoppingInitialState = ShoppingStateCreated

// ShoppingEvent tracks one car's visit to a repair shop. A shop-repair invoice
// case cannot advance until its linked event reaches RELEASED (final docs
// approved).
type ShoppingEvent struct {
	ShoppingEventID string             `json:"shoppingEventID"`
	CarMark         string             `json:"carMark"`
	ShopCode        string             `json:"shopCode"`
	State           ShoppingEventState `json:"state"`
}
