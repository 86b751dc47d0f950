package config

import "max.ks1230/expense-tracker/internal/entity/currency"

const (
	defaultAdminAddr = ":8080"
	defaultGRPCAddr  = ":50051"
)

type AppConfig struct {
	DisplayCurrency string `yaml:"default-currency"`
	Admin           string `yaml:"admin-addr"`
	GRPC            string `yaml:"grpc-addr"`
}

func (s *AppConfig) setDefaults() {
	if s.DisplayCurrency == "" {
		s.DisplayCurrency = currency.Base
	}
	if s.Admin == "" {
		s.Admin = defaultAdminAddr
	}
	if s.GRPC == "" {
		s.GRPC = defaultGRPCAddr
	}
}

func (s *AppConfig) DefaultCurrency() string {
	return s.DisplayCurrency
}

func (s *AppConfig) AdminAddr() string {
	return s.Admin
}

func (s *AppConfig) GRPCAddr() string {
	return s.GRPC
}
