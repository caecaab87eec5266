package domain

// Category категория товара в каталоге
type Category string

const (
	CategoryFabric    Category = "tissu"
	CategoryShirt     Category = "chemise"
	CategoryTrousers  Category = "pantalon"
	CategorySuit      Category = "costume"
	CategoryAccessory Category = "accessoire"

	// CategoryAll сентинел для фильтрации: совпадает с любой категорией
	CategoryAll Category = "all"
)

// Valid сообщает, является ли значение одной из категорий каталога.
// Сентинел "all" не считается категорией товара.
func (c Category) Valid() bool {
	switch c {
	case CategoryFabric, CategoryShirt, CategoryTrousers, CategorySuit, CategoryAccessory:
		return true
	}
	return false
}

// Product представляет товар в каталоге магазина
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Price         float64  `json:"price"`
	OldPrice      float64  `json:"oldPrice,omitempty"`
	Images        []string `json:"images"`
	IsNew         bool     `json:"isNew"`
	PublishedDate string   `json:"publishedDate"`
	Description   string   `json:"description"`
}

// CoverImage первая картинка товара — обложка в каталоге
func (p Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ProductDraft товар без ID, как его присылает админка при создании
type ProductDraft struct {
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Price         float64  `json:"price"`
	OldPrice      float64  `json:"oldPrice,omitempty"`
	Images        []string `json:"images"`
	IsNew         bool     `json:"isNew"`
	PublishedDate string   `json:"publishedDate"`
	Description   string   `json:"description"`
}

// ProductPatch частичное обновление товара. nil-поле означает "не менять".
// ID в патче отсутствует намеренно: он не меняется никогда.
type ProductPatch struct {
	Name          *string   `json:"name,omitempty"`
	Category      *Category `json:"category,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	OldPrice      *float64  `json:"oldPrice,omitempty"`
	Images        *[]string `json:"images,omitempty"`
	IsNew         *bool     `json:"isNew,omitempty"`
	PublishedDate *string   `json:"publishedDate,omitempty"`
	Description   *string   `json:"description,omitempty"`
}

// Apply накладывает патч на товар и возвращает результат. ID сохраняется.
func (pp ProductPatch) Apply(p Product) Product {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.OldPrice != nil {
		p.OldPrice = *pp.OldPrice
	}
	if pp.Images != nil {
		p.Images = *pp.Images
	}
	if pp.IsNew != nil {
		p.IsNew = *pp.IsNew
	}
	if pp.PublishedDate != nil {
		p.PublishedDate = *pp.PublishedDate
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	return p
}

// Buyer контактные данные покупателя из формы заказа
type Buyer struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
}

// Channel канал передачи заказа
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// OrderIntent намерение заказа: товар плюс данные покупателя.
// Никогда не сохраняется — живёт только до передачи во внешний канал.
type OrderIntent struct {
	Product Product `json:"product"`
	Buyer   Buyer   `json:"buyer"`
}

// Handoff результат компоновки заказа: готовая ссылка для внешнего канала.
// Ядро только строит URL; открывает его презентационный слой, без
// какого-либо подтверждения доставки.
type Handoff struct {
	IntentID string  `json:"intentId"`
	Channel  Channel `json:"channel"`
	URL      string  `json:"url"`
	Message  string  `json:"message"`
}

// Testimonial отзыв клиента. Статичные данные, приложение их не меняет.
type Testimonial struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
	Date    string `json:"date"`
}
