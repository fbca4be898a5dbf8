package seeders

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"rms-api/config"
	"rms-api/models"
)

// helper for pointer string
func ptrString(s string) *string {
	return &s
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}
	return string(hash)
}

func Seed() {
	// ============= Seed Users =============
	users := []models.User{
		{Username: "manager", Password: hashPassword("manager123"), FullName: "Tran Quoc Bao", Role: models.RoleManager},
		{Username: "staff1", Password: hashPassword("staff123"), FullName: "Nguyen Thi Hoa", Role: models.RoleStaff},
		{Username: "staff2", Password: hashPassword("staff123"), FullName: "Le Van Minh", Role: models.RoleStaff},
		{Username: "customer", Password: hashPassword("customer123"), FullName: "Guest", Role: models.RoleCustomer},
	}

	for _, user := range users {
		config.DB.FirstOrCreate(&user, models.User{Username: user.Username})
	}

	// ============= Seed Tables =============
	// 1xx Floor1, 2xx Floor2, 3xx Terrace
	var numbers []int
	for n := 101; n <= 110; n++ {
		numbers = append(numbers, n)
	}
	for n := 201; n <= 206; n++ {
		numbers = append(numbers, n)
	}
	for n := 301; n <= 304; n++ {
		numbers = append(numbers, n)
	}

	for _, number := range numbers {
		table := models.Table{
			Number: number,
			Area:   models.AreaForNumber(number),
			Status: models.TableAvailable,
		}
		config.DB.FirstOrCreate(&table, models.Table{Number: number})
	}

	// ============= Seed Menu =============
	items := []models.MenuItem{
		{Name: "Pho Bo", Category: "Noodles", Price: 55000, Available: true, Description: ptrString("Beef noodle soup")},
		{Name: "Pho Ga", Category: "Noodles", Price: 50000, Available: true, Description: ptrString("Chicken noodle soup")},
		{Name: "Bun Cha", Category: "Noodles", Price: 60000, Available: true, Description: ptrString("Grilled pork with vermicelli")},
		{Name: "Com Tam", Category: "Rice", Price: 45000, Available: true, Description: ptrString("Broken rice with grilled pork chop")},
		{Name: "Com Ga Xoi Mo", Category: "Rice", Price: 50000, Available: true, Description: ptrString("Crispy chicken rice")},
		{Name: "Goi Cuon", Category: "Starters", Price: 35000, Available: true, Description: ptrString("Fresh spring rolls")},
		{Name: "Cha Gio", Category: "Starters", Price: 40000, Available: true, Description: ptrString("Fried spring rolls")},
		{Name: "Banh Xeo", Category: "Starters", Price: 45000, Available: true, Description: ptrString("Sizzling pancake")},
		{Name: "Ca Phe Sua Da", Category: "Drinks", Price: 25000, Available: true, Description: ptrString("Iced milk coffee")},
		{Name: "Tra Da", Category: "Drinks", Price: 5000, Available: true, Description: ptrString("Iced tea")},
		{Name: "Nuoc Mia", Category: "Drinks", Price: 15000, Available: true, Description: ptrString("Sugarcane juice")},
		{Name: "Che Ba Mau", Category: "Desserts", Price: 30000, Available: false, Description: ptrString("Three-color dessert")},
	}

	for _, item := range items {
		config.DB.FirstOrCreate(&item, models.MenuItem{Name: item.Name})
	}

	fmt.Println("Seeding done: 4 users + 20 tables + 12 menu items")
}
