package migration

import (
	"context"
	"fmt"

	"github.com/avstrong/hotelier/internal/hotel"
	"github.com/avstrong/hotelier/internal/logger"
)

type storage interface {
	SaveRoomType(ctx context.Context, roomType *hotel.RoomType) error
	SaveRoom(ctx context.Context, room *hotel.Room) error
	SaveService(ctx context.Context, service *hotel.Service) error
	SaveGuest(ctx context.Context, guest *hotel.Guest) error
}

// Up seeds the catalog: room types, rooms, the service list and a demo guest.
func Up(ctx context.Context, l *logger.Logger, storage storage) error {
	single := &hotel.RoomType{TypeName: "Single", Description: "A cozy room for one", Capacity: 1}
	double := &hotel.RoomType{TypeName: "Double", Description: "Comfortable room for two", Capacity: 2}
	suite := &hotel.RoomType{TypeName: "Suite", Description: "Spacious suite with a separate living area", Capacity: 4}

	for _, roomType := range []*hotel.RoomType{single, double, suite} {
		if err := storage.SaveRoomType(ctx, roomType); err != nil {
			return fmt.Errorf("save room type %v: %w", roomType.TypeName, err)
		}
	}

	rooms := []struct {
		number    string
		roomType  *hotel.RoomType
		amenities []string
		price     float64
	}{
		{number: "101", roomType: single, amenities: []string{"WiFi", "TV"}, price: 100},
		{number: "102", roomType: single, amenities: []string{"WiFi", "TV", "Mini Bar"}, price: 120},
		{number: "201", roomType: double, amenities: []string{"WiFi", "TV", "Mini Bar"}, price: 150},
		{number: "202", roomType: double, amenities: []string{"WiFi", "TV", "Balcony"}, price: 170},
		{number: "301", roomType: suite, amenities: []string{"WiFi", "TV", "Mini Bar", "Jacuzzi"}, price: 300},
	}

	for _, r := range rooms {
		room, err := hotel.NewRoom(r.number, r.roomType, r.amenities, r.price)
		if err != nil {
			return fmt.Errorf("build room %v: %w", r.number, err)
		}

		if err := storage.SaveRoom(ctx, room); err != nil {
			return fmt.Errorf("save room %v: %w", r.number, err)
		}
	}

	services := []struct {
		id    string
		name  string
		price float64
	}{
		{id: "SV001", name: "Room Service", price: 20},
		{id: "SV002", name: "Spa Access", price: 50},
		{id: "SV003", name: "Laundry", price: 15},
		{id: "SV004", name: "Airport Pickup", price: 35},
	}

	for _, s := range services {
		service, err := hotel.NewService(s.id, s.name, s.price)
		if err != nil {
			return fmt.Errorf("build service %v: %w", s.id, err)
		}

		if err := storage.SaveService(ctx, service); err != nil {
			return fmt.Errorf("save service %v: %w", s.id, err)
		}
	}

	identity, err := hotel.NewIdentity("Alice Smith", "+1-555-0101", "alice.smith@example.com")
	if err != nil {
		return fmt.Errorf("build demo guest identity: %w", err)
	}

	guest, err := hotel.NewGuest("G1001", identity)
	if err != nil {
		return fmt.Errorf("build demo guest: %w", err)
	}

	if err := storage.SaveGuest(ctx, guest); err != nil {
		return fmt.Errorf("save demo guest: %w", err)
	}

	l.LogInfo("Seeded %v rooms, %v services", len(rooms), len(services))

	return nil
}
