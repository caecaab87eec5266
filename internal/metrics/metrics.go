package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry счётчики сервиса поверх собственного prometheus-реестра
type Registry struct {
	reg             *prometheus.Registry
	ProductsCreated prometheus.Counter
	ProductsUpdated prometheus.Counter
	ProductsDeleted prometheus.Counter
	OrderHandoffs   *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	created := prometheus.NewCounter(prometheus.CounterOpts{Name: "golfa_products_created_total"})
	updated := prometheus.NewCounter(prometheus.CounterOpts{Name: "golfa_products_updated_total"})
	deleted := prometheus.NewCounter(prometheus.CounterOpts{Name: "golfa_products_deleted_total"})
	handoffs := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "golfa_order_handoffs_total"}, []string{"channel"})

	r.MustRegister(created, updated, deleted, handoffs)
	return &Registry{
		reg:             r,
		ProductsCreated: created,
		ProductsUpdated: updated,
		ProductsDeleted: deleted,
		OrderHandoffs:   handoffs,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
