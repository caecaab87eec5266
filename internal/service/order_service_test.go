package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golfa/internal/domain"
)

func testOrderService() *OrderService {
	return NewOrderService(nil, "22376376746", "commande@golfa-couture.example", "GOLFA COUTURE")
}

func testProduct() domain.Product {
	return domain.Product{
		ID:          1,
		Name:        "Tissu Bazin Riche Premium",
		Category:    domain.CategoryFabric,
		Price:       7500,
		OldPrice:    10500,
		Images:      []string{"/images/Image3.jpeg"},
		Description: "Bazin riche de qualité supérieure",
	}
}

func testBuyer() domain.Buyer {
	return domain.Buyer{LastName: "Diallo", FirstName: "Mamadou", Phone: "+221 77 456 78 90"}
}

func TestComposeFor_RequiresAllBuyerFields(t *testing.T) {
	svc := testOrderService()
	p := testProduct()

	cases := []struct {
		name  string
		buyer domain.Buyer
	}{
		{"empty last name", domain.Buyer{FirstName: "Mamadou", Phone: "77"}},
		{"empty first name", domain.Buyer{LastName: "Diallo", Phone: "77"}},
		{"empty phone", domain.Buyer{LastName: "Diallo", FirstName: "Mamadou"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := svc.ComposeFor(p, tc.buyer, domain.ChannelWhatsApp)
			assert.ErrorIs(t, err, ErrValidation)
			// no link is built on a validation failure
			assert.Empty(t, h.URL)
		})
	}
}

func TestComposeFor_MessageHasFixedLayout(t *testing.T) {
	svc := testOrderService()
	h, err := svc.ComposeFor(testProduct(), testBuyer(), domain.ChannelWhatsApp)
	require.NoError(t, err)

	want := `Nouvelle Commande - GOLFA COUTURE

Produit reference: Tissu Bazin Riche Premium
Prix: 7 500 FCFA
Catégorie: tissu

Informations du client:
Nom: Diallo
Prénom: Mamadou
Téléphone: +221 77 456 78 90

Description: Bazin riche de qualité supérieure`
	assert.Equal(t, want, h.Message)
	assert.NotEmpty(t, h.IntentID)
}

func TestComposeFor_WhatsAppLink(t *testing.T) {
	svc := testOrderService()
	h, err := svc.ComposeFor(testProduct(), testBuyer(), domain.ChannelWhatsApp)
	require.NoError(t, err)

	assert.Equal(t, domain.ChannelWhatsApp, h.Channel)
	assert.True(t, strings.HasPrefix(h.URL, "https://wa.me/22376376746?text="), h.URL)
	// encodeURIComponent semantics: spaces are %20, never +
	assert.NotContains(t, h.URL, "+221")
	assert.NotContains(t, strings.TrimPrefix(h.URL, "https://wa.me/22376376746?text="), "+")
	assert.Contains(t, h.URL, "Nouvelle%20Commande")
}

func TestComposeFor_EmailLink(t *testing.T) {
	svc := testOrderService()
	h, err := svc.ComposeFor(testProduct(), testBuyer(), domain.ChannelEmail)
	require.NoError(t, err)

	assert.Equal(t, domain.ChannelEmail, h.Channel)
	assert.True(t, strings.HasPrefix(h.URL, "mailto:commande@golfa-couture.example?subject="), h.URL)
	assert.Contains(t, h.URL, "subject=Commande%3A%20Tissu%20Bazin%20Riche%20Premium")
	assert.Contains(t, h.URL, "&body=Nouvelle%20Commande")
}

func TestComposeFor_UnknownChannel(t *testing.T) {
	svc := testOrderService()
	_, err := svc.ComposeFor(testProduct(), testBuyer(), domain.Channel("sms"))
	assert.ErrorIs(t, err, ErrValidation)
}
