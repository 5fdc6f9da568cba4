// Package model holds the GORM persistence models. They never leave the persistence layer.
package model

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&UserDeviceModel{},
		&BusinessModel{},
		&ReviewModel{},
		&TagModel{},
		&BlogPostModel{},
		&AffiliateLinkModel{},
		&AffiliateClickModel{},
		&AffiliateConversionModel{},
		&CategoryModel{},
		&ImageModel{},
		&NotificationModel{},
	}
}
