package seed

import "github.com/hongminglow/catalog-be/internal/models"

// Category is a reference category with the brands and product lines its
// generated products are named after.
type Category struct {
	Name        string
	Description string
	Brands      []string
	Models      []string
}

// Model returns the category as stored.
func (c Category) Model() models.Category {
	return models.Category{Name: c.Name, Description: c.Description}
}

// Catalog is the reference catalog, in insertion order.
var Catalog = []Category{
	{
		Name:        "Electronics",
		Description: "Gadgets, accessories and consumer electronics",
		Brands:      []string{"Samsung", "Apple", "LG", "Sony", "OnePlus", "Xiaomi", "Realme", "Motorola", "Panasonic", "Canon"},
		Models:      []string{"Ultra", "Pro", "Max", "X", "S", "Plus", "Neo", "Prime", "Zoom", "Lite"},
	},
	{
		Name:        "Clothing",
		Description: "Men and Women apparel, trending fashion",
		Brands:      []string{"Levi's", "Nike", "Adidas", "Puma", "H&M", "Zara", "Uniqlo", "Gap", "Tommy", "Lee"},
		Models:      []string{"Slim Jeans", "Casual Tee", "Hoodie", "Chino", "Bomber Jacket", "Denim Shirt", "Track Pants", "Polo Shirt", "Summer Dress", "Windbreaker"},
	},
	{
		Name:        "Home Appliances",
		Description: "Appliances for home use and convenience",
		Brands:      []string{"Whirlpool", "Bosch", "IFB", "LG", "Samsung", "Panasonic", "Haier", "Bajaj", "Philips", "Hitachi"},
		Models:      []string{"Washing Machine", "Microwave", "Refrigerator", "Air Conditioner", "Mixer Grinder", "Vacuum Cleaner", "Water Purifier", "Induction Cooktop", "Food Processor", "Water Heater"},
	},
	{
		Name:        "Books",
		Description: "Fiction, non-fiction and educational books",
		Brands:      []string{"Penguin", "Random House", "HarperCollins", "O'Reilly", "Macmillan", "Simon & Schuster", "Bloomsbury", "Pearson", "Scholastic", "Hachette"},
		Models:      []string{"The Journey", "Life Lessons", "Mastering JavaScript", "Cooking Simplified", "Business Strategies", "The Unknown", "Mindful Living", "Short Stories", "Adventure Tales", "Academic Guide"},
	},
	{
		Name:        "Groceries",
		Description: "Daily essentials and grocery items",
		Brands:      []string{"Amul", "Nestle", "Britannia", "Tata", "Haldiram", "Gits", "MDH", "Patanjali", "Kellogg's", "Kissan"},
		Models:      []string{"Milk 1L", "Tea 250g", "Olive Oil 500ml", "Wheat Flour 1kg", "Rice 5kg", "Sugar 1kg", "Biscuits Pack", "Spices Combo", "Paneer 200g", "Honey 250g"},
	},
	{
		Name:        "Toys",
		Description: "Toys and games for kids of all ages",
		Brands:      []string{"Lego", "Hasbro", "Mattel", "Fisher-Price", "Funskool", "Rubbabu", "Hot Wheels", "Play-Doh", "Barbie", "Tomy"},
		Models:      []string{"Building Set", "Action Figure", "Puzzle", "Educational Kit", "Toy Car", "Soft Plush", "Board Game", "Water Gun", "Remote Car", "Singing Toy"},
	},
	{
		Name:        "Sports",
		Description: "Sports gear and fitness equipment",
		Brands:      []string{"Nike", "Adidas", "Puma", "Decathlon", "Yonex", "Wilson", "Reebok", "ASICS", "Under Armour", "New Balance"},
		Models:      []string{"Football", "Cricket Bat", "Tennis Racket", "Sports Shoes", "Yoga Mat", "Dumbbell Set", "Cycling Helmet", "Running Shorts", "Fitness Band", "Basketball"},
	},
	{
		Name:        "Beauty",
		Description: "Cosmetics, skincare and grooming",
		Brands:      []string{"Maybelline", "Lakme", "L'Oreal", "Nykaa", "Colorbar", "The Body Shop", "Nivea", "Garnier", "Clinique", "MAC"},
		Models:      []string{"Lipstick", "Foundation", "Moisturizer", "Face Wash", "Sunscreen", "Serum", "Shampoo", "Conditioner", "Face Mask", "Perfume"},
	},
	{
		Name:        "Footwear",
		Description: "Shoes, sandals and sports footwear",
		Brands:      []string{"Nike", "Adidas", "Reebok", "Skechers", "Clarks", "Bata", "Red Tape", "Sparx", "Puma", "Woodland"},
		Models:      []string{"Running Shoes", "Loafers", "Sandals", "Formal Shoes", "Sneakers", "Sports Sandals", "Flip Flops", "Boots", "Casual Slip-ons", "Canvas Shoes"},
	},
	{
		Name:        "Stationery",
		Description: "Office and school stationery items",
		Brands:      []string{"Camlin", "Faber-Castell", "Cello", "Reynolds", "Classmate", "Staedtler", "Pilot", "Pentel", "Kokuyo", "Linc"},
		Models:      []string{"Ball Pen", "Notebook", "Markers", "Highlighter", "Pencil Set", "Eraser", "Sharpener", "Drawing Pad", "Glue Stick", "Stapler"},
	},
	{
		Name:        "Furniture",
		Description: "Home and office furniture",
		Brands:      []string{"Ikea", "Nilkamal", "Wakefit", "Urban Ladder", "Damro", "Godrej", "HomeTown", "Peacock", "Amber", "Casa"},
		Models:      []string{"Dining Table", "Sofa Set", "Study Table", "Bookshelf", "Wardrobe", "TV Unit", "Coffee Table", "Bed Frame", "Recliner", "Office Chair"},
	},
	{
		Name:        "Automotive",
		Description: "Car and bike accessories",
		Brands:      []string{"Bosch", "3M", "Pioneer", "Michelin", "Hero", "Bajaj", "Mahindra", "Castrol", "Exide", "Yamaha"},
		Models:      []string{"Car Battery", "Tyre 15inch", "Car Seat Cover", "Helmet", "Riding Gloves", "Oil Filter", "GPS Tracker", "Car Charger", "Air Freshener", "Bike Chain"},
	},
	{
		Name:        "Jewellery",
		Description: "Necklaces, rings and fashion jewellery",
		Brands:      []string{"Tanishq", "Kalyan", "PC Jeweller", "CaratLane", "Malabar", "Joyalukkas", "Senco", "Kohinoor", "Orra", "Candere"},
		Models:      []string{"Gold Necklace", "Diamond Ring", "Earrings", "Bangle Set", "Pendant", "Bracelet", "Anklet", "Studs", "Mangalsutra", "Watch"},
	},
	{
		Name:        "Gardening",
		Description: "Plants, tools and gardening supplies",
		Brands:      []string{"Gardena", "Bosch", "Plantify", "NurseryPro", "Ryobi", "Sunrise", "GreenThumb", "PlantCare", "Gardenshop", "HomeGreen"},
		Models:      []string{"Pot Plant", "Soil Mix", "Gardening Tool Set", "Watering Can", "Pruner", "Plant Food", "Seed Pack", "Hanging Planter", "Garden Lights", "Compost Bin"},
	},
	{
		Name:        "Pet Supplies",
		Description: "Food and accessories for pets",
		Brands:      []string{"Drools", "Pedigree", "Whiskas", "Royal Canin", "Farmina", "Hill's", "Doggies", "PetSafe", "IAMS", "PawTree"},
		Models:      []string{"Dog Food 2kg", "Cat Food 1kg", "Pet Shampoo", "Chew Toy", "Pet Bed", "Leash", "Cat Litter", "Pet Bowl", "Grooming Kit", "Puppy Milk"},
	},
}

var descriptions = []string{
	"High quality and durable.",
	"Best in class performance.",
	"Affordable and long-lasting.",
	"Customer favorite item.",
	"Compact and stylish design.",
	"Lightweight and easy to use.",
	"Top-rated by customers.",
	"Eco-friendly and efficient.",
	"Trending product of the season.",
	"New arrival with improved features.",
}
