package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasarku_backend/internals/configs"
	chatAIModel "pasarku_backend/internals/features/chat/chat_ai/model"
	chatModel "pasarku_backend/internals/features/chat/conversations/model"
	productModel "pasarku_backend/internals/features/catalog/products/model"
	provinceModel "pasarku_backend/internals/features/catalog/provinces/model"
	transactionModel "pasarku_backend/internals/features/finance/transactions/model"
	promoProductModel "pasarku_backend/internals/features/promotions/promotion_products/model"
	promoModel "pasarku_backend/internals/features/promotions/promotions/model"
	adminModel "pasarku_backend/internals/features/users/admins/model"
	penggunaModel "pasarku_backend/internals/features/users/pengguna/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=pasarku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua model fitur.
// Unique index pasangan (low, high) pada conversations & (promotion, product)
// pada promotion_products ikut terbentuk di sini.
func Migrate() {
	if err := DB.AutoMigrate(
		&adminModel.AdminModel{},
		&penggunaModel.PenggunaModel{},
		&provinceModel.ProvinceModel{},
		&productModel.ProductModel{},
		&promoModel.PromotionModel{},
		&promoProductModel.PromotionProductModel{},
		&chatModel.ConversationModel{},
		&chatModel.ConversationMessageModel{},
		&chatAIModel.ChatAILogModel{},
		&transactionModel.TransactionModel{},
		&transactionModel.PaymentGatewayEventModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool terisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
