package app

import (
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
	tokenizationService "github.com/prabhanjangururaj/records-vault/internal/tokenization/service"
	tokenizationUseCase "github.com/prabhanjangururaj/records-vault/internal/tokenization/usecase"
)

// tokenizationComponents groups the tokenization gateway parts that the
// container assembles together.
type tokenizationComponents struct {
	credentialStore *tokenizationService.CredentialStore
	fieldPolicy     *tokenizationService.FieldPolicy
	dsmClient       *tokenizationService.DSMClient
	sessionManager  *tokenizationService.SessionManager
	useCase         tokenizationUseCase.TokenizationUseCase
}

// TokenizationUseCase returns the tokenization gateway instance.
// When metrics are enabled the use case is wrapped with instrumentation.
func (c *Container) TokenizationUseCase() (tokenizationUseCase.TokenizationUseCase, error) {
	c.tokenizationInit.Do(func() {
		if err := c.initTokenization(); err != nil {
			c.initErrors["tokenization"] = err
		}
	})
	if storedErr, exists := c.initErrors["tokenization"]; exists {
		return nil, storedErr
	}
	return c.tokenization.useCase, nil
}

// initTokenization assembles the credential store, session manager, DSM
// client, and orchestrator from configuration.
func (c *Container) initTokenization() error {
	logger := c.Logger()

	c.tokenization.credentialStore = tokenizationService.NewCredentialStore(
		map[tokenizationDomain.Role]string{
			tokenizationDomain.RoleAdmin:  c.config.DSMAdminAPIKey,
			tokenizationDomain.RoleEditor: c.config.DSMEditorAPIKey,
			tokenizationDomain.RoleViewer: c.config.DSMViewerAPIKey,
		},
		map[tokenizationDomain.Field]string{
			tokenizationDomain.FieldName:     c.config.DSMNameKeyID,
			tokenizationDomain.FieldPhone:    c.config.DSMPhoneKeyID,
			tokenizationDomain.FieldEmail:    c.config.DSMEmailKeyID,
			tokenizationDomain.FieldSSN:      c.config.DSMSSNKeyID,
			tokenizationDomain.FieldPassport: c.config.DSMPassportKeyID,
		},
	)

	c.tokenization.fieldPolicy = tokenizationService.NewDefaultFieldPolicy()

	c.tokenization.dsmClient = tokenizationService.NewDSMClient(
		c.config.DSMEndpoint,
		c.config.DSMRequestTimeout,
		logger,
	)

	c.tokenization.sessionManager = tokenizationService.NewSessionManager(
		c.tokenization.credentialStore,
		c.tokenization.dsmClient,
		logger,
	)

	useCase := tokenizationUseCase.NewTokenizationUseCase(
		c.tokenization.sessionManager,
		c.tokenization.dsmClient,
		c.tokenization.fieldPolicy,
		c.tokenization.credentialStore,
		logger,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return err
	}
	if businessMetrics != nil {
		useCase = tokenizationUseCase.NewTokenizationUseCaseWithMetrics(useCase, businessMetrics)
	}

	c.tokenization.useCase = useCase
	return nil
}
