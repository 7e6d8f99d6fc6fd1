package taxonomy

// Default returns the built-in taxonomy. Every list is in match order.
func Default() Snapshot {
	return Snapshot{
		Version:       1,
		PriorityRules: defaultPriorityRules(),
		Categories:    defaultCategories(),
		Subcategories: defaultSubcategories(),
		Abbreviations: defaultAbbreviations(),
	}
}

// Priority rules are evaluated before the category keywords.
func defaultPriorityRules() []PriorityRule {
	return []PriorityRule{
		{Category: "Snacks & Zoetwaren", Keywords: []string{
			"chips", "lentil chips", "tortilla chips", "nacho chips", "proper sea salt",
			"proper paprika", "proper sweet",
		}},
		{Category: "Pasta, Rijst & Granen", Keywords: []string{
			"muesli", "granola", "cruesli",
		}},
		{Category: "Huishouden", Keywords: []string{
			"schoonmaakazijn", "mullrose", "vanish", "vlekverwijderaar",
		}},
		{Category: "Sauzen & Specerijen", Keywords: []string{
			"pindakaas", "ahornsiroop", "maple", "harissa", "souq",
		}},
		{Category: "Dranken", Keywords: []string{
			"haverdrink", "sojadrink", "amandeldrink", "kokosdrink", "fever-tree", "ginger beer",
			"tonic",
		}},
		{Category: "Snacks & Zoetwaren", Keywords: []string{
			"chocolade", "chocola", "chocoladefiguurtjes", "chocolade druppels",
		}},
		{Category: "Snacks & Zoetwaren", Keywords: []string{
			"cashewnoten", "cashew", "noten",
		}},
		{Category: "Pasta, Rijst & Granen", Keywords: []string{
			"bulgur", "quinoa", "couscous",
		}},
		{Category: "Vlees & Vis", Keywords: []string{
			"ansjovis", "tonijn", "sardine",
		}},
		{Category: "Dranken", Keywords: []string{
			"pukka", "thee", "chamomile", "night time", "after dinner",
		}},
		{Category: "Vlees & Vis", Keywords: []string{
			"gyoza", "biltong", "knaks", "nduja", "cha siu",
		}},
		{Category: "Snacks & Zoetwaren", Keywords: []string{
			"smint", "sportlife", "gums", "mints", "haribo", "liga", "pappadum", "vlokken", "venz",
		}},
		{Category: "Persoonlijke Verzorging", Keywords: []string{
			"etos", "lenzen", "maandlenzen", "vloeistof", "azaron",
		}},
		{Category: "Brood & Bakkerij", Keywords: []string{
			"pizza", "pinsa", "pizzetta",
		}},
		{Category: "Pasta, Rijst & Granen", Keywords: []string{
			"ramen", "brilliant broth", "itsu",
		}},
		{Category: "Dranken", Keywords: []string{
			"rivella", "fanta", "dr pepper", "hi-five", "charitea", "mojo", "maté", "fentimans",
			"elderflower", "coolbest",
		}},
		{Category: "Snacks & Zoetwaren", Keywords: []string{
			"mars", "ijsrepen", "klene", "red band", "stophoest", "ben & jerry", "smoeltjes",
			"suikerschelpen", "mentos", "gum",
		}},
		{Category: "Huishouden", Keywords: []string{
			"hg ", "schoonmaak", "kookplaatreiniger", "beeldschermreiniger", "sportkleding",
			"tafelkleed",
		}},
		{Category: "Sauzen & Specerijen", Keywords: []string{
			"chili", "chilli", "go-tan", "mazzetti", "condimento",
		}},
		{Category: "Persoonlijke Verzorging", Keywords: []string{
			"always", "inlegkruisje", "dailies",
		}},
		{Category: "Brood & Bakkerij", Keywords: []string{
			"bladerdeeg", "filo", "easy bakery", "gist", "droge gist",
		}},
		{Category: "Vlees & Vis", Keywords: []string{
			"vivera", "plantaardige chicken", "tenders",
		}},
		{Category: "Zuivel & Eieren", Keywords: []string{
			"eru", "balans", "oat drink", "natrue",
		}},
		{Category: "Sauzen & Specerijen", Keywords: []string{
			"fairtrade original", "butter chicken", "curry kit",
		}},
		{Category: "Sauzen & Specerijen", Keywords: []string{
			"coconut oil", "kokosolie", "biofan",
		}},
		{Category: "Snacks & Zoetwaren", Keywords: []string{
			"kloppudding", "dr. oetker", "pudding",
		}},
	}
}

func defaultCategories() []CategoryKeywords {
	return []CategoryKeywords{
		{Name: "Zuivel & Eieren", Keywords: []string{
			"melk", "yoghurt", "kaas", "boter", "room", "eieren", "ei ", "kwark", "creme fraiche",
			"slagroom", "cottage", "mascarpone", "ricotta", "zuivelspread", "kookzuivel",
			"sour cream", "griekse stijl", "zaanlander", "geraspt", "plakken", "45+", "48+",
			"mozzarella", "pecorino", "parmigiano", "feta", "zaanse hoeve", "burrata", "brie",
			"geitenkaas", "camembert", "gorgonzola", "gruyere", "emmentaler", "grana padano",
			"parmareggio", "manchego", "streeckgenoten", "schrama", "belegen", "jong belegen",
			"extra belegen", "oud", "alpro", "oatly", "mild & creamy", "margarine", "becel",
			"blue band", "vla", "kleintje vla", "custard",
		}},
		{Name: "Groente & Fruit", Keywords: []string{
			"tomaat", "tomaten", "appel", "peer", "banaan", "bananen", "aardappel", "sla",
			"rauwkost", "rauwkostsalade", "komkommer", "paprika", "wortel", "ui ", "uien",
			"knoflook", "champignon", "broccoli", "bloemkool", "spinazie", "prei", "courgette",
			"aubergine", "avocado", "mango", "ananas", "druiven", "sinaasappel", "citroen",
			"limoen", "aardbei", "bosbes", "frambo", "elstar", "peen", "roerbak", "snoepgroente",
			"trostomaten", "cherry", "roma", "julienne", "basilicum", "groente", "fruit", "dadels",
			"rozijn", "chiquita", "bimi", "sjalot", "gemengde salade", "salade erbij",
			"italiaanse mix", "salade mix", "lunchsalade", "caesar", "pompoen", "peterselie",
			"bieslook", "koriander", "dille", "munt", "tijm", "oregano", "rozemarijn", "dragon",
			"kervel", "salie", "laurier", "bonenkruid", "bosui", "lente-ui", "radijs", "rucola",
			"veldsla", "andijvie", "witlof", "rode kool", "witte kool", "savooiekool", "spitskool",
			"boerenkool", "snijbiet", "pak choi", "chinese kool", "ijsbergsla", "lollo",
			"radicchio", "venkel", "knolselderij", "selderij", "pastinaak", "bieten", "mais",
			"artisjok", "asperge", "zeekraal", "postelein", "shiitake", "oester", "sperziebonen",
			"tuinerwten", "doperwten", "sugarsnaps", "peultjes", "olijf", "taggiasca",
			"paddestoelen", "paddenstoel", "kappertjes", "kersen", "pruimen", "abrikozen", "perzik",
			"nectarine", "melon", "watermeloen", "kiwi", "granaatappel", "passievrucht", "lychee",
			"pitaya", "papaya", "kokosnoot", "vijgen", "grapefruit", "mandarijn", "clementine",
			"conference", "gala", "jonagold", "golden", "granny", "schaal", "tros", "doos",
			"krieltjes",
		}},
		{Name: "Vlees & Vis", Keywords: []string{
			"kip", "varken", "rund", "gehakt", "filet", "worst", "bacon", "ham", "kipfilet",
			"biefstuk", "schnitzel", "spek", "kalkoen", "lam", "scharrel", "kipdij", "rosbief",
			"haricot", "ossenhaas", "entrecote", "ribeye", "slavink", "hamburger", "cordon bleu",
			"kipdrumstick", "kippenvleugel", "spareribs", "pulled pork", "rookvlees", "pastrami",
			"salami", "chorizo", "pancetta", "prosciutto", "carpaccio", "tartaar", "riblap",
			"sucadelapje", "stoofvlees", "sticky chicken", "shoarma", "mortadella", "fuet", "besos",
			"zalm", "tonijn", "garnaal", "vis", "kabeljauw", "schelvis", "tilapia", "pangasius",
			"forel", "makreel", "haring", "kibbeling", "lekkerbek", "visstick", "visfilet",
			"rivierkreeft", "kreeft", "krab", "mosselen", "oesters", "inktvis", "calamares",
			"scampi", "coquilles", "gerookte", "warmgerookte", "warmgerookt", "garnalenkroket",
			"tempura", "garnalen rauw", "gepeld", "ansjovis", "princes", "plantaardige balletjes",
			"plantaardige burger", "plantaardig gehakt",
		}},
		{Name: "Brood & Bakkerij", Keywords: []string{
			"brood", "croissant", "stok", "pistolet", "bol", "baguette", "wrap", "pita", "toast",
			"beschuit", "cracker", "wasa", "volkoren", "waldkorn", "meergranen", "rogge", "spelt",
			"haver", "zuurdesem", "ciabatta", "focaccia", "naan", "chapati", "tortilla",
			"flatbread", "knäckebröd", "bagel", "muffin", "donut", "croffle", "pannenkoek",
			"poffertjes", "pizzabodem", "rosti", "boulogne", "pains", "taart", "cake", "gebak",
			"appelflap", "saucijzenbroodje", "kaasbroodje",
		}},
		{Name: "Pasta, Rijst & Granen", Keywords: []string{
			"pasta", "penne", "spaghetti", "macaroni", "noodle", "noedel", "lasagne", "fusilli",
			"tagliatelle", "fettuccine", "linguine", "rigatoni", "farfalle", "orzo", "tortellini",
			"ravioli", "gnocchi", "cappelletti", "wok ", "udon", "orecchiette", "de cecco",
			"barilla", "sfoglie", "rijst", "couscous", "havermout", "muesli", "quinoa", "bulgur",
			"polenta", "risotto", "basmati", "jasmine", "pandan", "arborio", "sesamzaad", "sesam",
			"kikkererwten", "zwarte bonen", "witte bonen", "bruine bonen", "linzen", "sojabonen",
			"kapucijners", "spliterwten", "tuinbonen", "limabonen", "kidneybonen", "cannellini",
			"borlotti", "lima bonen", "edamame", "peulvruchtenmix", "peulvruchten",
		}},
		{Name: "Dranken", Keywords: []string{
			"water", "cola", "fris", "sap", "limonade", "ice tea", "tonic", "bitter lemon",
			"cassis", "grenadine", "appelsap", "sinaasappelsap", "jus d'orange", "pellegrino",
			"spa ", "evian", "perrier", "mineraalwater", "thee", "koffie", "espresso", "cappuccino",
			"latte", "cacao", "chocomel", "capsules", "pads", "lungo", "ristretto", "perla",
			"pukka", "bier", "wijn", "prosecco", "champagne", "cava", "abdij", "blond", "leffe",
			"heineken", "grolsch", "amstel", "hertog", "energy", "sportdrank", "vitamin well",
			"red bull", "monster", "energy drink", "haverdrink", "sojadrink", "amandeldrink",
			"rijstdrink", "kokosdrink", "havermelk", "sojamelk", "amandelmelk", "sauvignon",
			"chardonnay", "merlot", "cabernet", "pinot", "rioja", "chianti", "malbec", "shiraz",
			"riesling", "gewurztraminer", "moscato", "blanc", "rouge", "rosé", "rose",
		}},
		{Name: "Sauzen & Specerijen", Keywords: []string{
			"saus", "ketchup", "mayo", "mayonaise", "mosterd", "pesto", "dressing", "vinaigrette",
			"aioli", "tzatziki", "hummus", "guacamole", "salsa", "tapenade", "sambal", "sriracha",
			"tabasco", "sojasaus", "ketjap", "teriyaki", "hoisin", "oestersaus", "vissaus",
			"worcestershire", "olie", "azijn", "balsamico", "olijfolie", "zonnebloemolie", "peper",
			"zout", "kruiden", "curry", "paprika poeder", "kaneel", "nootmuskaat", "komijn",
			"kurkuma", "gember", "kardamom", "kruidnagel", "steranijs", "korianderzaad",
			"venkelzaad", "kerrie", "garam masala", "ras el hanout", "za'atar", "sumak", "cayenne",
			"tomatenpuree", "puree", "passata", "pelati", "honing", "cuisine", "paturain", "bâton",
			"smaakmakermix", "jus", "fond", "bouillon", "roux",
		}},
		{Name: "Snacks & Zoetwaren", Keywords: []string{
			"chips", "popcorn", "pretzels", "pinda", "borrel", "dipsaus", "zeewier", "krokant",
			"kroketjes", "cheese bites", "kaaskoekje", "nootje", "noten", "walnoot", "amandel",
			"cashew", "notenmix", "hazelnoot", "pistache", "macadamia", "pecannoot", "paranoot",
			"terra noten", "terra walnoot", "terra amandel", "pijnboompitten", "chiazaad",
			"zonnebloempitten", "pompoenpitten", "lijnzaad", "kokossnippers", "kokosrasp",
			"chocola", "chocolade", "koek", "snoep", "drop", "kauwgom", "tony", "reep", "biscuit",
			"sticks", "cookies", "bonbon", "marshmallow", "lolly", "zuurtje", "winegums", "m&m",
			"stroopwafel", "slofje", "slofjes", "musket", "lettertje", "macarons", "paashaas",
			"gips", "knettersuiker", "tompoucen", "tompouce", "nougatine", "nougat", "wafel",
			"roomijs", "ijs ", "pavlova", "fruit mix", "mousse", "tiramisu", "panna cotta",
			"cheesecake", "brownie",
		}},
		{Name: "Huishouden", Keywords: []string{
			"wc", "schoon", "afwas", "wasmiddel", "waspoeder", "wasverzachter", "doekje", "sponge",
			"bezem", "dweil", "allesreiniger", "bleek", "ontkalker", "vaatwas", "glansspoelmiddel",
			"glasreiniger", "glassex", "mullrose", "azijn", "schoonmaakazijn", "spray",
			"pedaalemmerzak", "emmerzak", "papier", "toiletpapier", "keukenrol", "servet", "tissue",
			"tempo", "folie", "aluminiumfolie", "huishoudfolie", "bakpapier", "vershoudfolie",
			"zak", "vuilnis", "afvalzak", "diepvrieszak", "cocktail prikker", "prikker",
			"sateprikker", "bakje", "doeboek", "toetenvegers", "batterij", "lamp", "kaars",
			"lucifer", "aansteker",
		}},
		{Name: "Persoonlijke Verzorging", Keywords: []string{
			"shampoo", "conditioner", "haarlak", "gel", "mousse", "haarverf", "magic retouch",
			"l'oréal", "loreal", "douche", "zeep", "douchegel", "bodylotion", "bodycrème",
			"deodorant", "deo", "deoleen", "satin", "anti-transpirant", "creme", "lotion",
			"hand soap", "handzeep", "hygiene", "care mint", "refill", "tandpasta", "tandenb",
			"mondwater", "flosdraad", "elmex", "oral", "scheerm", "scheermes", "scheergel",
			"aftershave", "make", "mascara", "lippenstift", "nagellak", "wattenschijf",
			"wattenstaaf", "maandverband", "tampon", "condoom",
		}},
		{Name: "Verpakking & Statiegeld", Keywords: []string{
			"statiegeld", "krat", "fles", "blik", "tasje", "verpakking", "emballage",
		}},
		{Name: "Bezorgkosten", Keywords: []string{
			"bezorg", "aflever", "service",
		}},
		{Name: "Abonnementen", Keywords: []string{
			"premium", "abonnement", "lidmaatschap", "bundel",
		}},
	}
}

func defaultSubcategories() []CategorySubcategories {
	return []CategorySubcategories{
		{Category: "Zuivel & Eieren", Subcategories: []SubcategoryKeywords{
			{Name: "Melk", Keywords: []string{
				"melk", "halfvol", "volle melk", "magere melk", "lactosevrij",
			}},
			{Name: "Kaas", Keywords: []string{
				"kaas", "goudse", "gruyere", "pecorino", "mozzarella", "feta", "brie", "camembert",
				"parmesan", "manchego",
			}},
			{Name: "Yoghurt & Kwark", Keywords: []string{
				"yoghurt", "kwark", "griekse", "skyr", "cottage",
			}},
			{Name: "Boter & Margarine", Keywords: []string{
				"boter", "margarine", "becel", "blue band", "roomboter",
			}},
			{Name: "Eieren", Keywords: []string{
				"eieren", "ei ", "scharreleieren", "bio eieren",
			}},
			{Name: "Room & Vla", Keywords: []string{
				"slagroom", "room", "vla", "custard", "creme fraiche",
			}},
			{Name: "Plantaardig", Keywords: []string{
				"alpro", "oatly", "mild & creamy", "plantaardig",
			}},
		}},
		{Category: "Groente & Fruit", Subcategories: []SubcategoryKeywords{
			{Name: "Groente", Keywords: []string{
				"tomaat", "komkommer", "paprika", "wortel", "broccoli", "spinazie", "sla", "kool",
				"prei", "courgette", "champignon", "ui", "knoflook",
			}},
			{Name: "Fruit", Keywords: []string{
				"appel", "peer", "banaan", "druiven", "aardbei", "mango", "ananas", "sinaasappel",
				"citroen", "kiwi",
			}},
			{Name: "Kruiden", Keywords: []string{
				"basilicum", "peterselie", "bieslook", "koriander", "munt", "dille", "rozemarijn",
				"tijm",
			}},
			{Name: "Peulvruchten", Keywords: []string{
				"bonen", "kikkererwten", "linzen", "erwten", "peulvruchten",
			}},
			{Name: "Salades", Keywords: []string{
				"salade", "sla", "rucola", "rauwkost",
			}},
			{Name: "Aardappelen", Keywords: []string{
				"aardappel", "krieltjes", "puree", "friet",
			}},
		}},
		{Category: "Vlees & Vis", Subcategories: []SubcategoryKeywords{
			{Name: "Kip", Keywords: []string{
				"kip", "kipfilet", "kipgehakt", "kipdij", "drumstick", "vleugel",
			}},
			{Name: "Rund & Varken", Keywords: []string{
				"rund", "varken", "gehakt", "biefstuk", "schnitzel", "sparerib", "bacon", "spek",
			}},
			{Name: "Vis", Keywords: []string{
				"zalm", "tonijn", "kabeljauw", "garnaal", "vis", "forel", "makreel",
			}},
			{Name: "Vleeswaren", Keywords: []string{
				"ham", "salami", "filet americain", "rosbief", "chorizo", "pancetta", "prosciutto",
			}},
			{Name: "Vegetarisch & Vegan", Keywords: []string{
				"vegetarisch", "vegan", "plantaardig", "tofu", "tempeh", "vivera",
			}},
			{Name: "Wild & Gevogelte", Keywords: []string{
				"kalkoen", "eend", "konijn", "wild",
			}},
		}},
		{Category: "Dranken", Subcategories: []SubcategoryKeywords{
			{Name: "Koffie", Keywords: []string{
				"koffie", "espresso", "lungo", "nespresso", "cappuccino",
			}},
			{Name: "Thee", Keywords: []string{
				"thee", "tea", "pukka", "pickwick", "lipton",
			}},
			{Name: "Frisdrank", Keywords: []string{
				"cola", "fanta", "sprite", "pepsi", "sinas", "frisdrank", "dr pepper",
			}},
			{Name: "Sap & Smoothies", Keywords: []string{
				"sap", "jus", "smoothie", "appelsap", "sinaasappelsap",
			}},
			{Name: "Bier", Keywords: []string{
				"bier", "leffe", "heineken", "amstel", "jupiler", "hertog jan", "ipa", "pils",
			}},
			{Name: "Wijn", Keywords: []string{
				"wijn", "sauvignon", "chardonnay", "merlot", "pinot", "prosecco", "champagne",
			}},
			{Name: "Sterke Drank", Keywords: []string{
				"whisky", "vodka", "rum", "gin", "jenever", "likeur",
			}},
			{Name: "Water", Keywords: []string{
				"water", "spa", "chaudfontaine", "bar le duc",
			}},
			{Name: "Sportdranken", Keywords: []string{
				"red bull", "energy", "sportdrank", "aquarius", "aa drink",
			}},
			{Name: "Plantaardige Dranken", Keywords: []string{
				"haverdrink", "sojadrink", "amandeldrink", "kokosdrink",
			}},
		}},
		{Category: "Snacks & Zoetwaren", Subcategories: []SubcategoryKeywords{
			{Name: "Chips & Noten", Keywords: []string{
				"chips", "noten", "pinda", "cashew", "pistache", "borrelnoot",
			}},
			{Name: "Snoep", Keywords: []string{
				"snoep", "drop", "winegum", "lolly", "haribo", "smint", "mentos",
			}},
			{Name: "Chocolade", Keywords: []string{
				"chocola", "bonbon", "praline", "reep", "tony", "milka",
			}},
			{Name: "Koekjes", Keywords: []string{
				"koek", "biscuit", "speculaas", "stroopwafel", "bastogne",
			}},
			{Name: "Ijs", Keywords: []string{
				"ijs", "magnum", "cornetto", "ben & jerry",
			}},
		}},
		{Category: "Brood & Bakkerij", Subcategories: []SubcategoryKeywords{
			{Name: "Brood", Keywords: []string{
				"brood", "boterham", "volkoren", "wit brood", "meergranen", "pistolet",
			}},
			{Name: "Gebak & Taart", Keywords: []string{
				"taart", "gebak", "croissant", "appeltaart", "tompouce",
			}},
			{Name: "Ontbijtproducten", Keywords: []string{
				"muesli", "havermout", "cornflakes", "cruesli", "granola",
			}},
			{Name: "Crackers & Toast", Keywords: []string{
				"cracker", "toast", "beschuit", "knäckebröd",
			}},
		}},
		{Category: "Sauzen & Specerijen", Subcategories: []SubcategoryKeywords{
			{Name: "Sauzen", Keywords: []string{
				"saus", "mayonaise", "ketchup", "mosterd", "aioli",
			}},
			{Name: "Kruiden & Specerijen", Keywords: []string{
				"kruiden", "peper", "zout", "paprikapoeder", "komijn", "kerrie",
			}},
			{Name: "Olie & Azijn", Keywords: []string{
				"olie", "olijfolie", "azijn", "balsamico",
			}},
			{Name: "Pasta Sauzen", Keywords: []string{
				"pesto", "pastasaus", "bolognese", "arrabiata",
			}},
		}},
	}
}

// Receipt tickets truncate product names. Prefix lookups walk this list in
// order, so longer keys must come before shorter keys they extend.
func defaultAbbreviations() []Abbreviation {
	return []Abbreviation{
		{Short: "SNOEP PAPRIK", Full: "AH Snoeppaprika"},
		{Short: "TROSTOMAAT", Full: "AH Trostomaten"},
		{Short: "BIO POMPOEN", Full: "AH Biologische pompoen"},
		{Short: "AH BANANEN", Full: "AH Bananen"},
		{Short: "AH RAUWKOST", Full: "AH Rauwkostsalade"},
		{Short: "PAPRIKA GEEL", Full: "AH Paprika geel"},
		{Short: "SNOEPGROENTE", Full: "AH Snoepgroente"},
		{Short: "MANDARIJNEN", Full: "AH Mandarijnen"},
		{Short: "DRUIVEN", Full: "AH Druiven"},
		{Short: "PETERSELIE", Full: "AH Peterselie"},
		{Short: "KNOFLOOK", Full: "AH Knoflook"},
		{Short: "KOMKOMMER", Full: "AH Komkommer"},
		{Short: "AH HV MELK", Full: "AH Halfvolle melk"},
		{Short: "ALPRO MILD&C", Full: "Alpro Mild & Creamy yoghurt"},
		{Short: "AH KR MUESLI", Full: "AH Krokante muesli"},
		{Short: "AH HAVERDRIN", Full: "AH Haverdrink"},
		{Short: "BECEL LIGHT", Full: "Becel Light margarine"},
		{Short: "AH KLEINTJE", Full: "AH Kleintje vla"},
		{Short: "AH EXC WIJN", Full: "AH Excellent wijn"},
		{Short: "AH SAUV BL", Full: "AH Sauvignon Blanc wijn"},
		{Short: "LEFFE BLOND", Full: "Leffe Blond bier"},
		{Short: "LEFFE", Full: "Leffe bier"},
		{Short: "DE LUNGO", Full: "Nespresso De Lungo koffie"},
		{Short: "RED BULL", Full: "Red Bull energy drink"},
		{Short: "AH PISTOLETS", Full: "AH Pistoletbroodjes"},
		{Short: "AH HAVERMOUT", Full: "AH Havermout"},
		{Short: "AH TAARTDEEG", Full: "AH Taartdeeg"},
		{Short: "MINI CRACKER", Full: "AH Mini crackers"},
		{Short: "AH GOUDSE", Full: "AH Goudse kaas"},
		{Short: "GRUYERE", Full: "AH Gruyère kaas"},
		{Short: "PECORINO", Full: "Pecorino kaas"},
		{Short: "AH RIJSTWAF", Full: "AH Rijstwafels"},
		{Short: "CHEESE BITES", Full: "AH Cheese bites"},
		{Short: "AH NOTEN", Full: "AH Notenmix"},
		{Short: "PECANNOTEN", Full: "AH Pecannoten"},
		{Short: "MUSKETBOMEN", Full: "Musketbomen gebak"},
		{Short: "AH HAGELSLAG", Full: "AH Hagelslag chocolade"},
		{Short: "KIPGEHAKT", Full: "AH Kipgehakt"},
		{Short: "AH PANCETTA", Full: "AH Pancetta spek"},
		{Short: "AH CHUTNEY", Full: "AH Chutney saus"},
		{Short: "AH BOEMBOE", Full: "AH Boemboe kruidenpasta"},
		{Short: "PICARD", Full: "Picard diepvriesmaaltijd"},
	}
}
