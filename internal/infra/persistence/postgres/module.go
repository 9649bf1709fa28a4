package postgres

import "go.uber.org/fx"

// Module provides the PostgreSQL store
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewAccountRepository,
		NewClaimRepository,
		NewEventCodeRepository,
		NewRatingRepository,
		NewTemplateRepository,
	),
)
