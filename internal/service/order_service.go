package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"golfa/internal/domain"
	"golfa/internal/repository"
)

// OrderService собирает из товара и данных покупателя готовую ссылку для
// внешнего канала (WhatsApp или почта). Заказ нигде не сохраняется: сервис
// возвращает ссылку, открывает её презентационный слой, подтверждения
// доставки нет.
type OrderService struct {
	repo           repository.ProductRepository
	whatsappNumber string
	orderEmail     string
	storeName      string
}

// NewOrderService номер и адрес назначения приходят из конфигурации,
// в коде их нет
func NewOrderService(repo repository.ProductRepository, whatsappNumber, orderEmail, storeName string) *OrderService {
	return &OrderService{
		repo:           repo,
		whatsappNumber: whatsappNumber,
		orderEmail:     orderEmail,
		storeName:      storeName,
	}
}

// Compose находит товар, проверяет данные покупателя и строит ссылку для
// выбранного канала. При любой ошибке валидации ссылка не строится вовсе.
func (s *OrderService) Compose(ctx context.Context, productID int64, buyer domain.Buyer, channel domain.Channel) (domain.Handoff, error) {
	if productID <= 0 {
		return domain.Handoff{}, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return domain.Handoff{}, err
	}
	return s.ComposeFor(product, buyer, channel)
}

// ComposeFor то же, что Compose, но для уже загруженного товара
func (s *OrderService) ComposeFor(product domain.Product, buyer domain.Buyer, channel domain.Channel) (domain.Handoff, error) {
	if buyer.LastName == "" {
		return domain.Handoff{}, fmt.Errorf("%w: last name is required", ErrValidation)
	}
	if buyer.FirstName == "" {
		return domain.Handoff{}, fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if buyer.Phone == "" {
		return domain.Handoff{}, fmt.Errorf("%w: phone is required", ErrValidation)
	}

	message := s.composeMessage(product, buyer)

	var link string
	switch channel {
	case domain.ChannelWhatsApp:
		link = fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, encodeComponent(message))
	case domain.ChannelEmail:
		subject := "Commande: " + product.Name
		link = fmt.Sprintf("mailto:%s?subject=%s&body=%s", s.orderEmail, encodeComponent(subject), encodeComponent(message))
	default:
		return domain.Handoff{}, fmt.Errorf("%w: unknown channel %q", ErrValidation, channel)
	}

	return domain.Handoff{
		IntentID: uuid.NewString(),
		Channel:  channel,
		URL:      link,
		Message:  message,
	}, nil
}

// composeMessage текст заказа. Порядок строк фиксированный, шаблон менять
// нельзя: на него завязаны получатели на стороне магазина.
func (s *OrderService) composeMessage(p domain.Product, b domain.Buyer) string {
	return fmt.Sprintf(`Nouvelle Commande - %s

Produit reference: %s
Prix: %s
Catégorie: %s

Informations du client:
Nom: %s
Prénom: %s
Téléphone: %s

Description: %s`,
		s.storeName,
		p.Name,
		domain.FormatPrice(p.Price),
		p.Category,
		b.LastName,
		b.FirstName,
		b.Phone,
		p.Description,
	)
}

// encodeComponent процентное кодирование в духе encodeURIComponent:
// пробел — это %20, а не плюс, иначе wa.me и почтовые клиенты расходятся
// в прочтении текста
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
