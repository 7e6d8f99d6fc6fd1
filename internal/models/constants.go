package models

// CategoryOther is the catch-all category assigned when no rule matches.
const CategoryOther = "Overig"

// Built-in categories
const (
	CategoryDairy         = "Zuivel & Eieren"
	CategoryProduce       = "Groente & Fruit"
	CategoryMeatFish      = "Vlees & Vis"
	CategoryBakery        = "Brood & Bakkerij"
	CategoryGrains        = "Pasta, Rijst & Granen"
	CategoryDrinks        = "Dranken"
	CategorySauces        = "Sauzen & Specerijen"
	CategorySnacks        = "Snacks & Zoetwaren"
	CategoryHousehold     = "Huishouden"
	CategoryPersonalCare  = "Persoonlijke Verzorging"
	CategoryPackaging     = "Verpakking & Statiegeld"
	CategoryDelivery      = "Bezorgkosten"
	CategorySubscriptions = "Abonnementen"
)

// Currency used by every document of the supported retailer
const CurrencyEUR = "EUR"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
