package service

import (
	"github.com/MKhiriev/go-sign-desk/internal/config"
	"github.com/MKhiriev/go-sign-desk/internal/crypto"
	"github.com/MKhiriev/go-sign-desk/internal/store"
	"github.com/MKhiriev/go-sign-desk/internal/validators"
)

type ClientServices struct {
	CredentialService CredentialService
}

func NewClientServices(cfg config.ClientApp) *ClientServices {
	return &ClientServices{
		CredentialService: NewCredentialService(
			validators.NewIdentityValidator(cfg.PhoneRegion),
			crypto.NewSecretHasher(cfg.Argon),
			store.NewIdentityRepository,
			cfg.PhoneRegion,
		),
	}
}
