package config

import "gorm.io/gorm"

// CreateLicensingIndexes adds partial indexes gorm tags cannot express.
//
// idx_payments_contract_active backs every "sum of non-returned payments"
// query, which runs on each payment and on every income report.
// idx_individuals_pesel_active keeps PESEL unique among live individuals
// while allowing any number of tombstoned rows to share the sentinel value.
// The LOWER() indexes back the case-insensitive login and software name
// checks, so a racing insert fails instead of creating a near-duplicate.
func CreateLicensingIndexes(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payments_contract_active
		ON payments (contract_id)
		WHERE returned = false;
		CREATE UNIQUE INDEX IF NOT EXISTS idx_individuals_pesel_active
		ON individuals (pesel)
		WHERE status = 'ACTIVE';
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_login_lower
		ON users (LOWER(login));
		CREATE UNIQUE INDEX IF NOT EXISTS idx_softwares_name_lower
		ON softwares (LOWER(name));
	`).Error
}
