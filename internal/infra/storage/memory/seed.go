package memory

import (
	"github.com/m04kA/alejandrums/internal/domain"
	"github.com/m04kA/alejandrums/pkg/types"
)

// DemoRooms залы, которыми заполняется хранилище (совпадают с миграцией 0002_seed_rooms)
func DemoRooms() []domain.Room {
	return []domain.Room{
		{
			ID:          1,
			Slug:        "sala-a",
			Name:        "Sala A",
			Description: "Nuestra sala más amplia, ideal para bandas completas y ensayos de presentación.",
			Capacity:    6,
			Equipment: []string{
				"Batería DW Collector's",
				"Amplificador Marshall JCM800",
				"Amplificador Ampeg SVT",
				"PA Yamaha 1000W",
				"4 micrófonos Shure SM58",
			},
			ImageURL:     "/static/img/sala-a.svg",
			PricePerHour: 15000,
			Active:       true,
		},
		{
			ID:          2,
			Slug:        "sala-b",
			Name:        "Sala B",
			Description: "Sala versátil para formaciones medianas, con gran respuesta en frecuencias graves.",
			Capacity:    4,
			Equipment: []string{
				"Batería Pearl Export",
				"Amplificador Fender Twin Reverb",
				"Amplificador Fender Rumble",
				"PA Behringer 600W",
				"3 micrófonos Shure SM58",
			},
			ImageURL:     "/static/img/sala-b.svg",
			PricePerHour: 12000,
			Active:       true,
		},
		{
			ID:          3,
			Slug:        "sala-c",
			Name:        "Sala C",
			Description: "Sala premium con tratamiento acústico de estudio, pensada para preproducción y grabación.",
			Capacity:    5,
			Equipment: []string{
				"Batería Gretsch Renown",
				"Amplificador Vox AC30",
				"Amplificador Orange OB1",
				"PA QSC 1200W",
				"Interfaz Focusrite 18i20",
				"5 micrófonos Shure",
			},
			ImageURL:     "/static/img/sala-c.svg",
			PricePerHour: 20000,
			Active:       true,
		},
	}
}

// DemoReservations демонстрационные резервы относительно today
func DemoReservations(today types.Date) []domain.Reservation {
	tomorrow := today.AddDays(1)

	plan := []struct {
		roomID int64
		date   types.Date
		hours  []int
	}{
		{roomID: 1, date: today, hours: []int{10, 11, 15, 16, 17}},
		{roomID: 1, date: tomorrow, hours: []int{9, 14}},
		{roomID: 2, date: today, hours: []int{12, 13, 18}},
		{roomID: 3, date: today, hours: []int{10, 11, 12}},
	}

	var out []domain.Reservation
	for _, p := range plan {
		for _, h := range p.hours {
			out = append(out, domain.Reservation{RoomID: p.roomID, Date: p.date, Hour: h})
		}
	}
	return out
}

// NewSeededStore создаёт хранилище с демо-залами и резервами на фиксированный день
func NewSeededStore(today types.Date) *Store {
	return NewDemoStore(func() types.Date { return today })
}

// NewDemoStore создаёт хранилище с демо-залами. Демо-резервы считаются при каждом чтении
// относительно today(), поэтому после полуночи они переезжают на новый день
func NewDemoStore(today func() types.Date) *Store {
	s := NewStore()
	for _, room := range DemoRooms() {
		s.AddRoom(room)
	}
	s.demoToday = today
	return s
}

// demoReservations демо-резервы зала на дату. Вызывается под s.mu
func (s *Store) demoReservations(roomID int64, date types.Date) []domain.Reservation {
	if s.demoToday == nil {
		return nil
	}

	var out []domain.Reservation
	for _, res := range DemoReservations(s.demoToday()) {
		if res.RoomID == roomID && res.Date == date {
			out = append(out, res)
		}
	}
	return out
}
