package domain

// CartLine — строка корзины: (пользователь, товар) → количество.
// Инвариант: не более одной строки на пару, количество всегда >= 1.
type CartLine struct {
	UserID   int64 `json:"user_id"`
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// CartEntry — строка корзины, обогащённая данными каталога для выдачи.
type CartEntry struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}
