package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"
)

// RunAllSeeds loads the development fixtures. Gated on SEED=true so a
// production start never writes fixture rows.
func RunAllSeeds(db *gorm.DB) {
	if os.Getenv("SEED") != "true" {
		return
	}

	log.Println("🌱 Seeding development data")

	if err := SeedUsers(db); err != nil {
		log.Printf("❌ user seed failed: %v", err)
		return
	}
	if err := SeedClassrooms(db); err != nil {
		log.Printf("❌ classroom seed failed: %v", err)
		return
	}

	log.Println("✅ Seeding done")
}
