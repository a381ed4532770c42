package seeders

import (
	"fmt"
	"log"

	roomModel "hostel-booking/models/room"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hostelSeed struct {
	Name     string
	Prefix   string
	Rooms    int
	Capacity int
}

// SeedRooms populates the default room inventory. It is a no-op when rooms
// already exist so repeated startups do not duplicate the inventory.
func SeedRooms(db *gorm.DB) {
	log.Printf("🔍 Checking room inventory...")

	var count int64
	if err := db.Model(&roomModel.Room{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count rooms: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Room inventory already present (%d rooms)", count)
		return
	}

	hostels := []hostelSeed{
		{Name: "Sharavati", Prefix: "SH", Rooms: 20, Capacity: 4},
		{Name: "Narmada", Prefix: "NA", Rooms: 15, Capacity: 3},
		{Name: "Alaknanda", Prefix: "AL", Rooms: 18, Capacity: 4},
		{Name: "Mandakini", Prefix: "MA", Rooms: 12, Capacity: 3},
	}

	var rooms []roomModel.Room
	for _, hostel := range hostels {
		roomType := fmt.Sprintf("%d-bed", hostel.Capacity)
		for i := 1; i <= hostel.Rooms; i++ {
			rooms = append(rooms, roomModel.Room{
				ID:         uuid.NewString(),
				RoomNumber: fmt.Sprintf("%s%03d", hostel.Prefix, i),
				HostelName: hostel.Name,
				RoomType:   roomType,
				Capacity:   hostel.Capacity,
				Occupied:   0,
				Available:  true,
			})
		}
	}

	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("❌ Failed to seed rooms: %v", err)
		return
	}
	log.Printf("✅ Created %d rooms across %d hostels", len(rooms), len(hostels))
}
