package main

import (
	"petplace/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models.
func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.UserDeviceModel{},
		model.NotificationModel{},
		model.BusinessModel{},
		model.ReviewModel{},
		model.BlogPostModel{},
		model.AffiliateLinkModel{},
		model.AffiliateClickModel{},
		model.AffiliateConversionModel{},
		model.CategoryModel{},
		model.TagModel{},
		model.ImageModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
