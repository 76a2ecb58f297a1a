package migrations

import (
	"context"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/nawi-studio/nawi-backend/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email VARCHAR(120) NOT NULL UNIQUE,
	username VARCHAR(80) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS services (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(100) NOT NULL,
	title_ar VARCHAR(100) NOT NULL,
	description TEXT NOT NULL,
	description_ar TEXT NOT NULL,
	icon VARCHAR(50),
	price_range VARCHAR(50),
	order_num INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS portfolio (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(200) NOT NULL,
	title_ar VARCHAR(200),
	description TEXT,
	description_ar TEXT,
	category VARCHAR(50) NOT NULL,
	image_url VARCHAR(500) NOT NULL,
	thumbnail_url VARCHAR(500),
	client_name VARCHAR(100),
	project_date DATE,
	tags VARCHAR(200),
	is_featured BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	order_num INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS design_requests (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(120) NOT NULL,
	phone VARCHAR(20),
	company VARCHAR(100),
	service_type VARCHAR(50) NOT NULL,
	project_description TEXT NOT NULL,
	budget_range VARCHAR(50),
	deadline DATE,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	user_id BIGINT REFERENCES users (id),
	notes TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS contact_messages (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(120) NOT NULL,
	phone VARCHAR(20),
	subject VARCHAR(200),
	message TEXT NOT NULL,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	is_replied BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Run applies the schema and seeds bootstrap data. It is idempotent
// and meant to be invoked once per deployment via the -migrate flag,
// not on every process start.
func Run(ctx context.Context, db *sqlx.DB, adminEmail, adminPassword string) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	if err := seedAdmin(ctx, db, adminEmail, adminPassword); err != nil {
		return err
	}
	if err := seedServices(ctx, db); err != nil {
		return err
	}
	return seedPortfolio(ctx, db)
}

func seedAdmin(ctx context.Context, db *sqlx.DB, email, password string) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE email = $1`, email); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (email, username, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, 'admin', $2, TRUE, NOW(), NOW())
	`, email, string(hashed))
	if err != nil {
		return err
	}

	logger.Log.Infow("seeded admin user", "email", email)
	return nil
}

type seedService struct {
	title, titleAr, description, descriptionAr, icon, priceRange string
	orderNum                                                     int
}

func seedServices(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM services`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []seedService{
		{
			title:         "Logo Design",
			titleAr:       "تصميم الشعارات",
			description:   "Professional logo design that captures your brand identity",
			descriptionAr: "تصميم شعار احترافي يعكس هوية علامتك التجارية",
			icon:          "brush",
			priceRange:    "$200 - $500",
			orderNum:      1,
		},
		{
			title:         "Social Media Design",
			titleAr:       "تصميم السوشيال ميديا",
			description:   "Eye-catching posts, stories, and reels for all platforms",
			descriptionAr: "منشورات وستوريز وريلز جذابة لجميع المنصات",
			icon:          "share",
			priceRange:    "$100 - $300",
			orderNum:      2,
		},
		{
			title:         "Brand Identity",
			titleAr:       "الهوية البصرية",
			description:   "Complete brand identity package including guidelines",
			descriptionAr: "حزمة هوية بصرية كاملة مع دليل الاستخدام",
			icon:          "palette",
			priceRange:    "$500 - $1500",
			orderNum:      3,
		},
		{
			title:         "Print Design",
			titleAr:       "تصميم المطبوعات",
			description:   "Business cards, flyers, brochures, and marketing materials",
			descriptionAr: "كروت شخصية، فلايرز، بروشورات، ومواد تسويقية",
			icon:          "print",
			priceRange:    "$150 - $400",
			orderNum:      4,
		},
	}

	for _, s := range seeds {
		_, err := db.ExecContext(ctx, `
			INSERT INTO services (title, title_ar, description, description_ar, icon,
			                      price_range, order_num, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		`, s.title, s.titleAr, s.description, s.descriptionAr, s.icon, s.priceRange, s.orderNum)
		if err != nil {
			return err
		}
	}

	logger.Log.Infow("seeded services", "count", len(seeds))
	return nil
}

type seedPortfolioItem struct {
	title, titleAr, description, descriptionAr, category string
	imageURL, clientName, tags                           string
	orderNum                                             int
}

func seedPortfolio(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM portfolio`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []seedPortfolioItem{
		{
			title:         "Tech Startup Brand Identity",
			titleAr:       "هوية بصرية لشركة تقنية ناشئة",
			description:   "Complete brand identity for innovative tech startup",
			descriptionAr: "هوية بصرية كاملة لشركة تقنية ناشئة مبتكرة",
			category:      "branding",
			imageURL:      "/static/uploads/portfolio1.jpg",
			clientName:    "TechVision Inc.",
			tags:          "branding,logo,identity",
			orderNum:      1,
		},
		{
			title:         "Restaurant Social Media Campaign",
			titleAr:       "حملة سوشيال ميديا لمطعم",
			description:   "Creative social media designs for restaurant launch",
			descriptionAr: "تصاميم سوشيال ميديا إبداعية لافتتاح مطعم",
			category:      "social",
			imageURL:      "/static/uploads/portfolio2.jpg",
			clientName:    "Taste Paradise",
			tags:          "social,instagram,posts",
			orderNum:      2,
		},
	}

	for _, p := range seeds {
		_, err := db.ExecContext(ctx, `
			INSERT INTO portfolio (title, title_ar, description, description_ar, category,
			                       image_url, client_name, tags, is_featured, order_num, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, $9, NOW())
		`, p.title, p.titleAr, p.description, p.descriptionAr, p.category,
			p.imageURL, p.clientName, p.tags, p.orderNum)
		if err != nil {
			return err
		}
	}

	logger.Log.Infow("seeded portfolio", "count", len(seeds))
	return nil
}
