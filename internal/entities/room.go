package entities

// Room describes one entry of the lodge's room catalogue, served to the site
// for the rooms section.
type Room struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Views       string `json:"views"`
	PriceNote   string `json:"price_note"`
}

// RoomTypes is the fixed set of bookable room types offered on the
// reservation form.
var RoomTypes = []string{
	"Standard Room",
	"Mountain View Deluxe",
	"Family Suite",
	"Twin Cozy",
	"Superior Double",
	"Heritage Room",
}

// IsRoomType reports whether name is one of the bookable room types.
func IsRoomType(name string) bool {
	for _, t := range RoomTypes {
		if t == name {
			return true
		}
	}
	return false
}

const contactPriceNote = "Based on contact through reservation or phone"

// Catalogue is the room content shown on the site.
var Catalogue = []Room{
	{
		ID:          1,
		Name:        "Standard Room",
		Description: "Cozy accommodation with traditional decor and warm interiors. Perfect for solo travellers or couples.",
		Views:       "Garden / courtyard",
		PriceNote:   contactPriceNote,
	},
	{
		ID:          2,
		Name:        "Double Bed with Mountain View",
		Description: "Double bed with direct views of the Himalayan peaks. Warm, welcoming space for couples.",
		Views:       "Mountain",
		PriceNote:   contactPriceNote,
	},
	{
		ID:          3,
		Name:        "Mountain View Deluxe",
		Description: "Spacious room with direct views of Mt. Nilgiri and Annapurna massif. Private seating area.",
		Views:       "7000m+ peaks",
		PriceNote:   contactPriceNote,
	},
	{
		ID:          4,
		Name:        "Family Suite",
		Description: "Two interconnected rooms, ideal for families. Traditional Tibetan-Nepali touches.",
		Views:       "Mountain & courtyard",
		PriceNote:   contactPriceNote,
	},
	{
		ID:          5,
		Name:        "Garden Camping with Mountain View",
		Description: "Camp under the stars with mountain vistas. Our garden camping spot combines comfort and nature.",
		Views:       "Garden & mountain",
		PriceNote:   contactPriceNote,
	},
	{
		ID:          6,
		Name:        "Superior Room with Balcony and Mountain View",
		Description: "Larger room with private balcony and sweeping mountain views. Extra seating and traditional rugs.",
		Views:       "Balcony, 7000m+ peaks",
		PriceNote:   contactPriceNote,
	},
}
