package hotel

import "time"

// SeedDemo fills empty stores with demonstration data: three rooms, two
// guests, and one open stay. Stores that already hold records are left
// alone, so seeding is safe to re-run.
func (s *Service) SeedDemo() error {
	roomCount, err := s.rooms.Length()
	if err != nil {
		return err
	}
	if roomCount == 0 {
		if _, err := s.AddRoom("STD", 2, 2, 2); err != nil {
			return err
		}
		if _, err := s.AddRoom("DELUXE", 5, 3, 3); err != nil {
			return err
		}
		if _, err := s.AddRoom("SUITE", 10, 4, 4); err != nil {
			return err
		}
	}

	guestCount, err := s.guests.Length()
	if err != nil {
		return err
	}
	if guestCount == 0 {
		if _, err := s.AddGuest("John Smith", "0812345678", "A1234567890"); err != nil {
			return err
		}
		if _, err := s.AddGuest("Jane Doe", "0899999999", "B9876543210"); err != nil {
			return err
		}
	}

	stayCount, err := s.stays.Length()
	if err != nil {
		return err
	}
	if stayCount == 0 {
		rooms, err := s.Rooms(false)
		if err != nil {
			return err
		}
		guests, err := s.Guests(false)
		if err != nil {
			return err
		}
		if len(rooms) > 0 && len(guests) > 0 {
			today := time.Now().Format("2006-01-02")
			if _, err := s.Checkin(guests[0].ID, rooms[0].ID, today, 1); err != nil {
				return err
			}
		}
	}
	return nil
}
