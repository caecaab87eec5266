package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config настройки сервиса. Адреса назначения заказов — внешние координаты
// магазина, задаются только конфигурацией.
type Config struct {
	ListenAddr string      `yaml:"listen_addr"`
	DataFile   string      `yaml:"data_file"`
	Order      OrderConfig `yaml:"order"`
}

// OrderConfig куда уходят заказы
type OrderConfig struct {
	WhatsAppNumber string `yaml:"whatsapp_number"`
	Email          string `yaml:"email"`
	StoreName      string `yaml:"store_name"`
}

// Default значения по умолчанию, применяются при отсутствии файла
func Default() Config {
	return Config{
		ListenAddr: ":9091",
		DataFile:   "data/products.json",
		Order: OrderConfig{
			WhatsAppNumber: "22376376746",
			Email:          "commande@golfa-couture.example",
			StoreName:      "GOLFA COUTURE",
		},
	}
}

// Load читает YAML-конфиг поверх значений по умолчанию. Отсутствующий файл
// не ошибка. Скалярные ключи можно перекрыть переменными окружения.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GOLFA_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("GOLFA_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("GOLFA_WHATSAPP_NUMBER"); v != "" {
		cfg.Order.WhatsAppNumber = v
	}
	if v := os.Getenv("GOLFA_ORDER_EMAIL"); v != "" {
		cfg.Order.Email = v
	}
	if v := os.Getenv("GOLFA_STORE_NAME"); v != "" {
		cfg.Order.StoreName = v
	}
}
