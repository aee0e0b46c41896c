package jobs

// Seed literals for the offers app. Volatile fields (ids, timestamps) are
// filled in at insert time by the seed steps.

type categorySeed struct {
	Slug      string
	Name      string
	Icon      string
	Color     string
	SortOrder int
}

type vibeSeed struct {
	Category  string
	Name      string
	Icon      string
	Color     string
	SortOrder int
	Active    bool
}

type occasionSeed struct {
	Category    string
	Name        string
	Icon        string
	DiscountPct float64
	SortOrder   int
	Active      bool
}

type hashtagSeed struct {
	Category   string
	Tag        string
	Popularity int64
	Trending   bool
	SortOrder  int
	Active     bool
}

type storeSeed struct {
	Name        string
	Category    string
	City        string
	Zone        string
	CashbackPct float64
}

type brandSeed struct {
	Name     string
	Slug     string
	Category string
	Featured bool
}

type offerSeed struct {
	Title       string
	Brand       string
	Category    string
	DiscountPct float64
	ValidDays   int
	FlashSale   bool
}

type couponSeed struct {
	Code           string
	Description    string
	DiscountPct    float64
	MaxRedemptions int
	ExpiresInDays  int
}

var categorySeeds = []categorySeed{
	{Slug: "food-dining", Name: "Food & Dining", Icon: "🍽️", Color: "#FF6B35", SortOrder: 1},
	{Slug: "fashion", Name: "Fashion", Icon: "👗", Color: "#E91E63", SortOrder: 2},
	{Slug: "electronics", Name: "Electronics", Icon: "📱", Color: "#2196F3", SortOrder: 3},
	{Slug: "beauty-spa", Name: "Beauty & Spa", Icon: "💅", Color: "#9C27B0", SortOrder: 4},
	{Slug: "entertainment", Name: "Entertainment", Icon: "🎬", Color: "#FF9800", SortOrder: 5},
	{Slug: "fitness", Name: "Fitness", Icon: "🏋️", Color: "#4CAF50", SortOrder: 6},
	{Slug: "travel", Name: "Travel", Icon: "✈️", Color: "#00BCD4", SortOrder: 7},
	{Slug: "home-living", Name: "Home & Living", Icon: "🛋️", Color: "#795548", SortOrder: 8},
}

// Legacy metadata rows. Only half the categories carry metadata so the
// consolidation job always has both migrated and skipped categories to report.
var vibeSeeds = []vibeSeed{
	{Category: "food-dining", Name: "Cozy", Icon: "🕯️", Color: "#8D6E63", SortOrder: 1, Active: true},
	{Category: "food-dining", Name: "Rooftop", Icon: "🌆", Color: "#5C6BC0", SortOrder: 2, Active: true},
	{Category: "food-dining", Name: "Family Style", Icon: "👨‍👩‍👧", Color: "#66BB6A", SortOrder: 3, Active: true},
	{Category: "food-dining", Name: "Late Night", Icon: "🌙", Color: "#37474F", SortOrder: 4, Active: false},
	{Category: "fashion", Name: "Streetwear", Icon: "🧢", Color: "#212121", SortOrder: 1, Active: true},
	{Category: "fashion", Name: "Formal", Icon: "🤵", Color: "#424242", SortOrder: 2, Active: true},
	{Category: "beauty-spa", Name: "Relaxing", Icon: "🧖", Color: "#CE93D8", SortOrder: 1, Active: true},
	{Category: "beauty-spa", Name: "Glam", Icon: "✨", Color: "#F48FB1", SortOrder: 2, Active: true},
	{Category: "entertainment", Name: "Date Night", Icon: "💑", Color: "#EF5350", SortOrder: 1, Active: true},
	{Category: "entertainment", Name: "Family Fun", Icon: "🎡", Color: "#FFCA28", SortOrder: 2, Active: true},
}

var occasionSeeds = []occasionSeed{
	{Category: "food-dining", Name: "Birthday Dinner", Icon: "🎂", DiscountPct: 25, SortOrder: 1, Active: true},
	{Category: "food-dining", Name: "Business Lunch", Icon: "💼", DiscountPct: 15, SortOrder: 2, Active: true},
	{Category: "food-dining", Name: "Weekend Brunch", Icon: "🥞", DiscountPct: 20, SortOrder: 3, Active: true},
	{Category: "fashion", Name: "Eid Shopping", Icon: "🌙", DiscountPct: 30, SortOrder: 1, Active: true},
	{Category: "fashion", Name: "Back to School", Icon: "🎒", DiscountPct: 20, SortOrder: 2, Active: true},
	{Category: "beauty-spa", Name: "Wedding Prep", Icon: "💍", DiscountPct: 35, SortOrder: 1, Active: true},
	{Category: "entertainment", Name: "School Holidays", Icon: "🏖️", DiscountPct: 25, SortOrder: 1, Active: true},
}

var hashtagSeeds = []hashtagSeed{
	{Category: "food-dining", Tag: "#hiddengems", Popularity: 12400, Trending: true, SortOrder: 1, Active: true},
	{Category: "food-dining", Tag: "#brunchgoals", Popularity: 9800, Trending: true, SortOrder: 2, Active: true},
	{Category: "food-dining", Tag: "#foodiedeals", Popularity: 7600, Trending: false, SortOrder: 3, Active: true},
	{Category: "fashion", Tag: "#ootd", Popularity: 22100, Trending: true, SortOrder: 1, Active: true},
	{Category: "fashion", Tag: "#thriftfinds", Popularity: 5400, Trending: false, SortOrder: 2, Active: true},
	{Category: "beauty-spa", Tag: "#selfcaresunday", Popularity: 8900, Trending: true, SortOrder: 1, Active: true},
	{Category: "entertainment", Tag: "#weekendvibes", Popularity: 15300, Trending: true, SortOrder: 1, Active: true},
	{Category: "entertainment", Tag: "#movienight", Popularity: 6100, Trending: false, SortOrder: 2, Active: true},
}

var storeSeeds = []storeSeed{
	{Name: "Saffron Kitchen", Category: "food-dining", City: "Dubai", Zone: "downtown-dubai", CashbackPct: 12},
	{Name: "Marina Social", Category: "food-dining", City: "Dubai", Zone: "dubai-marina", CashbackPct: 15},
	{Name: "The Daily Grind", Category: "food-dining", City: "Dubai", Zone: "jbr", CashbackPct: 10},
	{Name: "Zaatar House", Category: "food-dining", City: "Sharjah", Zone: "al-majaz", CashbackPct: 8},
	{Name: "Corniche Bites", Category: "food-dining", City: "Abu Dhabi", Zone: "corniche", CashbackPct: 11},
	{Name: "Urban Threads", Category: "fashion", City: "Dubai", Zone: "business-bay", CashbackPct: 14},
	{Name: "Desert Rose Boutique", Category: "fashion", City: "Abu Dhabi", Zone: "khalidiya", CashbackPct: 10},
	{Name: "Souk Styles", Category: "fashion", City: "Sharjah", Zone: "al-qasba", CashbackPct: 9},
	{Name: "Tailor & Co", Category: "fashion", City: "Dubai", Zone: "downtown-dubai", CashbackPct: 13},
	{Name: "Volt Electronics", Category: "electronics", City: "Dubai", Zone: "business-bay", CashbackPct: 10},
	{Name: "Circuit City UAE", Category: "electronics", City: "Abu Dhabi", Zone: "al-zahiyah", CashbackPct: 12},
	{Name: "GadgetHub", Category: "electronics", City: "Ajman", Zone: "al-rashidiya", CashbackPct: 7},
	{Name: "Serenity Spa", Category: "beauty-spa", City: "Dubai", Zone: "jbr", CashbackPct: 18},
	{Name: "Pearl Nails", Category: "beauty-spa", City: "Dubai", Zone: "dubai-marina", CashbackPct: 15},
	{Name: "Oasis Wellness", Category: "beauty-spa", City: "Al Ain", Zone: "town-center", CashbackPct: 12},
	{Name: "CineMax Lounge", Category: "entertainment", City: "Dubai", Zone: "downtown-dubai", CashbackPct: 10},
	{Name: "Adventure Zone", Category: "entertainment", City: "Abu Dhabi", Zone: "yas-island", CashbackPct: 11},
	{Name: "Bowl & Brew", Category: "entertainment", City: "Sharjah", Zone: "al-majaz", CashbackPct: 9},
	{Name: "Iron Temple Gym", Category: "fitness", City: "Dubai", Zone: "business-bay", CashbackPct: 16},
	{Name: "FlexFit Studio", Category: "fitness", City: "Dubai", Zone: "jbr", CashbackPct: 12},
	{Name: "Peak Performance", Category: "fitness", City: "Ras Al Khaimah", Zone: "al-nakheel", CashbackPct: 10},
	{Name: "Wanderlust Travel", Category: "travel", City: "Dubai", Zone: "downtown-dubai", CashbackPct: 11},
	{Name: "Nest & Nook", Category: "home-living", City: "Dubai", Zone: "dubai-marina", CashbackPct: 13},
	{Name: "Casa Comfort", Category: "home-living", City: "Fujairah", Zone: "city-center", CashbackPct: 10},
}

var brandSeeds = []brandSeed{
	{Name: "Saffron Group", Slug: "saffron-group", Category: "food-dining", Featured: true},
	{Name: "Marina Hospitality", Slug: "marina-hospitality", Category: "food-dining", Featured: false},
	{Name: "Urban Threads", Slug: "urban-threads", Category: "fashion", Featured: true},
	{Name: "Desert Rose", Slug: "desert-rose", Category: "fashion", Featured: false},
	{Name: "Volt", Slug: "volt", Category: "electronics", Featured: true},
	{Name: "Serenity", Slug: "serenity", Category: "beauty-spa", Featured: true},
	{Name: "CineMax", Slug: "cinemax", Category: "entertainment", Featured: false},
	{Name: "Iron Temple", Slug: "iron-temple", Category: "fitness", Featured: false},
	{Name: "Wanderlust", Slug: "wanderlust", Category: "travel", Featured: false},
	// References a category the app retired; the seed step skips it with a warning.
	{Name: "PetPals", Slug: "petpals", Category: "pets", Featured: false},
}

var offerSeeds = []offerSeed{
	{Title: "2-for-1 Mains", Brand: "saffron-group", Category: "food-dining", DiscountPct: 50, ValidDays: 30},
	{Title: "Free Dessert with Dinner", Brand: "saffron-group", Category: "food-dining", DiscountPct: 15, ValidDays: 14},
	{Title: "Brunch for Two", Brand: "marina-hospitality", Category: "food-dining", DiscountPct: 30, ValidDays: 21},
	{Title: "Summer Wardrobe Refresh", Brand: "urban-threads", Category: "fashion", DiscountPct: 40, ValidDays: 10, FlashSale: true},
	{Title: "Abaya Collection Launch", Brand: "desert-rose", Category: "fashion", DiscountPct: 25, ValidDays: 30},
	{Title: "Flagship Phone Trade-In", Brand: "volt", Category: "electronics", DiscountPct: 20, ValidDays: 45},
	{Title: "Audio Week", Brand: "volt", Category: "electronics", DiscountPct: 35, ValidDays: 7, FlashSale: true},
	{Title: "Couples Spa Day", Brand: "serenity", Category: "beauty-spa", DiscountPct: 45, ValidDays: 30},
	{Title: "Weekday Movie Marathon", Brand: "cinemax", Category: "entertainment", DiscountPct: 30, ValidDays: 60},
	{Title: "3-Month Membership", Brand: "iron-temple", Category: "fitness", DiscountPct: 25, ValidDays: 30},
	{Title: "Staycation Package", Brand: "wanderlust", Category: "travel", DiscountPct: 20, ValidDays: 90},
}

var couponSeeds = []couponSeed{
	{Code: "WELCOME20", Description: "20% off your first redemption", DiscountPct: 20, MaxRedemptions: 1000, ExpiresInDays: 90},
	{Code: "FOODIE15", Description: "15% off food & dining offers", DiscountPct: 15, MaxRedemptions: 500, ExpiresInDays: 30},
	{Code: "FLASH50", Description: "50% off one flash-sale item", DiscountPct: 50, MaxRedemptions: 200, ExpiresInDays: 7},
	{Code: "WEEKEND10", Description: "10% off weekend bookings", DiscountPct: 10, MaxRedemptions: 2000, ExpiresInDays: 60},
	{Code: "SPAMONTH", Description: "25% off beauty & spa all month", DiscountPct: 25, MaxRedemptions: 300, ExpiresInDays: 30},
	{Code: "BNPLBONUS", Description: "Extra 5% when paying with BNPL", DiscountPct: 5, MaxRedemptions: 1500, ExpiresInDays: 45},
}

// searchQuerySeeds back the trending-searches surface. The readiness check
// wants at least 50 entries, so the list stays a little above that.
var searchQuerySeeds = []string{
	"brunch deals", "rooftop dinner", "sushi near me", "iftar buffet", "coffee shops jbr",
	"burger offers", "italian restaurant", "karak tea", "shawarma deals", "dessert places",
	"abaya sale", "sneaker drop", "designer outlet", "kids clothes", "watch sale",
	"phone trade in", "laptop deals", "headphones offer", "gaming setup", "smart watch",
	"spa day", "couples massage", "nail salon", "hair treatment", "facial offer",
	"cinema tickets", "bowling night", "escape room", "theme park", "kids play area",
	"gym membership", "yoga classes", "personal trainer", "crossfit box", "padel court",
	"staycation deals", "desert safari", "city tour", "hotel brunch", "beach club",
	"sofa sale", "home decor", "kitchen gadgets", "bedding offer", "garden furniture",
	"cashback stores", "bnpl stores", "flash sale today", "coupon codes", "new offers",
	"free delivery", "student discount", "family deals", "weekend offers",
}

// nearbyActivitySeeds are recent social-proof events; timestamps are spread
// over the last few hours at insert time.
var nearbyActivitySeeds = []struct {
	Store string
	Zone  string
	Kind  string
}{
	{Store: "Saffron Kitchen", Zone: "downtown-dubai", Kind: "redeem"},
	{Store: "Marina Social", Zone: "dubai-marina", Kind: "purchase"},
	{Store: "Urban Threads", Zone: "business-bay", Kind: "save"},
	{Store: "Volt Electronics", Zone: "business-bay", Kind: "purchase"},
	{Store: "Serenity Spa", Zone: "jbr", Kind: "redeem"},
	{Store: "CineMax Lounge", Zone: "downtown-dubai", Kind: "purchase"},
	{Store: "Iron Temple Gym", Zone: "business-bay", Kind: "save"},
	{Store: "The Daily Grind", Zone: "jbr", Kind: "redeem"},
	{Store: "Pearl Nails", Zone: "dubai-marina", Kind: "purchase"},
	{Store: "Wanderlust Travel", Zone: "downtown-dubai", Kind: "save"},
	{Store: "Nest & Nook", Zone: "dubai-marina", Kind: "purchase"},
	{Store: "Adventure Zone", Zone: "yas-island", Kind: "redeem"},
}
