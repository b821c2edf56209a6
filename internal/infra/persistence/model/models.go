// Package model contains the GORM persistence structs.
package model

// All lists every persisted model, in dependency order, for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&SpotModel{},
		&LandmarkModel{},
		&ImageModel{},
		&ReviewModel{},
		&BusinessModel{},
	}
}
