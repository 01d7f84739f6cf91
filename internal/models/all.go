package models

// All lists every model, in dependency order, for schema setup in tests and
// development databases.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Deal{},
		&Investment{},
		&DistributionRequest{},
		&ProfitDistribution{},
		&Transaction{},
		&AuditLog{},
		&Notification{},
	}
}
