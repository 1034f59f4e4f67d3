package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailyse/salon-api/internal/core/domain"
)

// Seed loads the demo fixtures: an admin account, a regular account and the
// product catalogue. It is idempotent: collections already holding data are
// left untouched. Demo credentials: admin@nailyse.com/admin123 and
// user@nailyse.com/user123.
func Seed(ctx context.Context, db *mongo.Database) error {
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	return seedProducts(ctx, db)
}

func seedUsers(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(userCollection)
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	fixtures := []struct {
		email, fullName, phone, password string
		roles                            []string
	}{
		{"admin@nailyse.com", "Admin Nailyse", "+33612345678", "admin123", []string{domain.RoleAdmin}},
		{"user@nailyse.com", "Marie Dubois", "+33698765432", "user123", nil},
	}

	docs := make([]interface{}, 0, len(fixtures))
	for _, f := range fixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash fixture password: %w", err)
		}
		docs = append(docs, userDoc{
			Email:        f.email,
			FullName:     f.fullName,
			Phone:        f.phone,
			Roles:        domain.NormalizeRoles(f.roles),
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
			IsActive:     true,
		})
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

func seedProducts(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(productCollection)
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return nil
	}

	catalogue := []productDoc{
		{
			Name:        "Vernis Gel UV - Rouge Passion",
			Description: "Un rouge intense pour une manucure longue durée. Finition brillante.",
			Price:       12.99,
			ImageURL:    "https://images.unsplash.com/photo-1585128792020-803d29415281?q=80&w=600&auto=format&fit=crop",
		},
		{
			Name:        "Lampe UV LED Pro",
			Description: "Séchage rapide pour tous types de gels. Minuterie automatique.",
			Price:       45.50,
			ImageURL:    "https://images.pexels.com/photos/3997391/pexels-photo-3997391.jpeg?auto=compress&cs=tinysrgb&w=600",
		},
		{
			Name:        "Kit Manucure Complet",
			Description: "Tout le nécessaire pour démarrer : limes, repousse cuticules, huile nourrissante.",
			Price:       29.99,
			ImageURL:    "https://images.pexels.com/photos/3997379/pexels-photo-3997379.jpeg?auto=compress&cs=tinysrgb&w=600",
		},
		{
			Name:        "Poudre Acrylique Rose",
			Description: "Pour des extensions solides et naturelles. Facile à travailler.",
			Price:       15.00,
			ImageURL:    "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?q=80&w=600&auto=format&fit=crop",
		},
		{
			Name:        "Kit Press-on Nails \"Glazed Donut\"",
			Description: "Tendance Hailey Bieber, effet perlé blanc. Forme Amande. Inclus : 24 faux ongles, colle, lime.",
			Price:       18.90,
			ImageURL:    "https://images.unsplash.com/photo-1604654894610-df63bc536371?q=80&w=600&auto=format&fit=crop",
		},
		{
			Name:        "Kit Press-on Nails \"Midnight Sparkle\"",
			Description: "Noir profond avec paillettes holographiques. Forme Stiletto. Parfait pour les soirées.",
			Price:       22.00,
			ImageURL:    "https://images.unsplash.com/photo-1604654894610-df63bc536371?q=80&w=600&auto=format&fit=crop",
		},
		{
			Name:        "Kit Press-on Nails \"Classic French\"",
			Description: "L'indémodable French Manucure. Forme Carrée arrondie. Élégance naturelle.",
			Price:       16.50,
			ImageURL:    "https://images.unsplash.com/photo-1522337660859-02fbefca4702?q=80&w=600&auto=format&fit=crop",
		},
	}

	docs := make([]interface{}, 0, len(catalogue))
	for _, p := range catalogue {
		docs = append(docs, p)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}
