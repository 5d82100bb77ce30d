package catalog

// destinations is the embedded catalog used whenever the AI capability is
// unavailable. Costs are INR for a 5-day trip.
var destinations = []Destination{
	// Beach / coastal
	{
		Name: "Goa", Location: "Goa, India",
		Tagline:      "Sun, sand & sea — India's beach capital",
		Styles:       []string{"beaches", "water-based", "city life", "adventure", "food & culinary", "waterfalls"},
		BaseCost:     10000, CostPerDay: 2500,
		Distance:     "~600 km from Mumbai", TravelTime: "1 hr by flight",
		Highlight:    "Calangute & Baga Beach, Dudhsagar Falls, Old Goa Churches",
		ImageKeyword: "goa beach sunset palm trees waves",
		FamousFor:    "Beaches, nightlife, seafood, and Portuguese architecture",
	},
	{
		Name: "Andaman Islands", Location: "Port Blair, Andaman & Nicobar",
		Tagline:      "Crystal waters, pristine beaches, and untouched nature",
		Styles:       []string{"beaches", "islands", "water-based", "adventure", "nature & landscape", "heritage sites"},
		BaseCost:     25000, CostPerDay: 4000,
		Distance:     "~1200 km from Chennai (by air)", TravelTime: "2.5 hrs by flight",
		Highlight:    "Radhanagar Beach, Havelock Island, scuba diving, Cellular Jail",
		ImageKeyword: "andaman beach clear turquoise water coral island",
		FamousFor:    "Scuba diving, pristine beaches, and bioluminescent bays",
	},
	{
		Name: "Lakshadweep", Location: "Kavaratti, Lakshadweep",
		Tagline:      "India's hidden paradise — coral islands and lagoons",
		Styles:       []string{"beaches", "islands", "water-based", "nature & landscape"},
		BaseCost:     30000, CostPerDay: 5000,
		Distance:     "~400 km from Kochi (by sea/air)", TravelTime: "1.5 hrs by flight",
		Highlight:    "Agatti Island, lagoon snorkeling, glass-bottom boat rides",
		ImageKeyword: "lakshadweep lagoon coral reef turquoise island",
		FamousFor:    "Coral reefs, crystal lagoons, and marine biodiversity",
	},
	{
		Name: "Pondicherry", Location: "Puducherry, India",
		Tagline:      "French charm meets Indian soul by the Bay of Bengal",
		Styles:       []string{"beaches", "culture & heritage", "heritage sites", "city life", "food & culinary", "museums & arts"},
		BaseCost:     5000, CostPerDay: 1500,
		Distance:     "~150 km from Chennai", TravelTime: "3 hrs by bus/train",
		Highlight:    "Promenade Beach, Auroville, French Quarter, Sri Aurobindo Ashram",
		ImageKeyword: "pondicherry french quarter beach colorful streets",
		FamousFor:    "French architecture, spiritual retreats, and beach cafes",
	},
	{
		Name: "Varkala", Location: "Varkala, Kerala",
		Tagline:      "Cliff-top beach paradise in God's Own Country",
		Styles:       []string{"beaches", "nature & landscape", "temples & spiritual", "backwaters & lakes"},
		BaseCost:     7000, CostPerDay: 1800,
		Distance:     "~55 km from Thiruvananthapuram", TravelTime: "1.5 hrs",
		Highlight:    "Varkala Cliff, Papanasam Beach, Janardanaswamy Temple",
		ImageKeyword: "varkala cliff beach kerala sunset",
		FamousFor:    "Red laterite cliffs, beach yoga, and Ayurvedic treatments",
	},

	// Mountains / hill stations
	{
		Name: "Manali", Location: "Manali, Himachal Pradesh",
		Tagline:      "Snow-capped peaks, pine forests, and mountain magic",
		Styles:       []string{"mountains", "hill stations", "adventure", "nature & landscape", "snow"},
		BaseCost:     12000, CostPerDay: 2500,
		Distance:     "~540 km from Delhi", TravelTime: "12 hrs bus or 1.5 hrs flight",
		Highlight:    "Rohtang Pass, Solang Valley skiing, Hadimba Temple, Old Manali",
		ImageKeyword: "manali mountains snow river himachal pradesh",
		FamousFor:    "Snow sports, scenic beauty, and adventure activities",
	},
	{
		Name: "Shimla", Location: "Shimla, Himachal Pradesh",
		Tagline:      "The Queen of Hills — colonial charm in the Himalayas",
		Styles:       []string{"hill stations", "mountains", "culture & heritage", "nature & landscape"},
		BaseCost:     10000, CostPerDay: 2000,
		Distance:     "~370 km from Delhi", TravelTime: "8 hrs by bus",
		Highlight:    "The Ridge, Jakhu Temple, Christ Church, Mall Road",
		ImageKeyword: "shimla hill station colonial town himachal",
		FamousFor:    "Toy train ride, colonial architecture, and apple orchards",
	},
	{
		Name: "Leh Ladakh", Location: "Leh, Ladakh",
		Tagline:      "The roof of India — otherworldly landscapes and monasteries",
		Styles:       []string{"mountains", "adventure", "nature & landscape", "culture & heritage", "snow"},
		BaseCost:     20000, CostPerDay: 3500,
		Distance:     "~1000 km from Delhi", TravelTime: "1.5 hrs by flight",
		Highlight:    "Pangong Lake, Nubra Valley, Khardung La Pass, Thiksey Monastery",
		ImageKeyword: "ladakh pangong lake monastery mountain desert",
		FamousFor:    "Monastery treks, Pangong Lake, and high-altitude adventures",
	},
	{
		Name: "Darjeeling", Location: "Darjeeling, West Bengal",
		Tagline:      "Tea gardens, toy trains, and Himalayan sunrises",
		Styles:       []string{"hill stations", "nature & landscape", "culture & heritage"},
		BaseCost:     10000, CostPerDay: 2000,
		Distance:     "~600 km from Kolkata", TravelTime: "12 hrs by train",
		Highlight:    "Tiger Hill sunrise, Batasia Loop, tea estate tours, Himalayan Railway",
		ImageKeyword: "darjeeling tea plantation himalayan sunrise kanchenjunga",
		FamousFor:    "Darjeeling tea, UNESCO toy train, and Kanchenjunga views",
	},
	{
		Name: "Munnar", Location: "Munnar, Kerala",
		Tagline:      "Rolling tea hills and misty valleys of Kerala",
		Styles:       []string{"hill stations", "nature & landscape", "forests & wildlife", "waterfalls", "backwaters & lakes"},
		BaseCost:     8000, CostPerDay: 1800,
		Distance:     "~580 km from Chennai", TravelTime: "9 hrs by bus",
		Highlight:    "Tea Museum, Eravikulam National Park, Mattupetty Dam, Attukal Waterfalls",
		ImageKeyword: "munnar tea plantation hills mist kerala green",
		FamousFor:    "Tea and spice plantations, Neelakurinji flowers, wildlife",
	},
	{
		Name: "Ooty (Udhagamandalam)", Location: "Ooty, Tamil Nadu",
		Tagline:      "Queen of Hill Stations in the Nilgiris",
		Styles:       []string{"hill stations", "nature & landscape", "forests & wildlife"},
		BaseCost:     5000, CostPerDay: 1500,
		Distance:     "~560 km from Chennai", TravelTime: "8 hrs by bus",
		Highlight:    "Ooty Lake, Botanical Gardens, Doddabetta Peak, Nilgiri Mountain Railway",
		ImageKeyword: "ooty nilgiris hill station botanical garden lake",
		FamousFor:    "Nilgiri Mountain Railway, rose gardens, and Toda villages",
	},
	{
		Name: "Kodaikanal", Location: "Kodaikanal, Tamil Nadu",
		Tagline:      "Princess of Hill Stations — misty lakes and ancient forests",
		Styles:       []string{"hill stations", "nature & landscape", "forests & wildlife", "backwaters & lakes", "waterfalls"},
		BaseCost:     5000, CostPerDay: 1400,
		Distance:     "~460 km from Chennai", TravelTime: "7 hrs by bus",
		Highlight:    "Kodai Lake, Coaker's Walk, Pillar Rocks, Bryant Park, Pine Forest",
		ImageKeyword: "kodaikanal lake mist hill station tamil nadu green",
		FamousFor:    "Star-shaped lake, homemade chocolates, eucalyptus forests, and sunrise from Dolphin's Nose",
	},
	{
		Name: "Yelagiri", Location: "Yelagiri Hills, Tamil Nadu",
		Tagline:      "Peaceful hill retreat just 3 hours from Chennai",
		Styles:       []string{"hill stations", "nature & landscape", "adventure"},
		BaseCost:     3000, CostPerDay: 1000,
		Distance:     "~230 km from Chennai", TravelTime: "3.5 hrs by bus",
		Highlight:    "Yelagiri Lake, Swami Malai Hills trek, Nature Park, 14-hairpin bend road",
		ImageKeyword: "yelagiri hills lake tamil nadu green peaceful",
		FamousFor:    "Budget-friendly weekend getaway, paragliding, trekking, rose garden",
	},
	{
		Name: "Yercaud", Location: "Yercaud, Tamil Nadu",
		Tagline:      "The Jewel of the South — serene coffee plantations and lakes",
		Styles:       []string{"hill stations", "nature & landscape"},
		BaseCost:     3500, CostPerDay: 1000,
		Distance:     "~360 km from Chennai", TravelTime: "5 hrs by bus",
		Highlight:    "Yercaud Lake, Lady's Seat viewpoint, Bear's Cave, Killiyur Falls",
		ImageKeyword: "yercaud lake coffee plantation hill station salem",
		FamousFor:    "Coffee plantations, serene lake, orange groves, and Shevaroy Temple",
	},
	{
		Name: "Coorg (Kodagu)", Location: "Coorg, Karnataka",
		Tagline:      "Scotland of India — coffee, mist, and waterfalls",
		Styles:       []string{"hill stations", "nature & landscape", "forests & wildlife", "adventure", "waterfalls", "village/rural tourism"},
		BaseCost:     7000, CostPerDay: 1600,
		Distance:     "~490 km from Chennai", TravelTime: "8 hrs by bus",
		Highlight:    "Abbey Falls, Raja's Seat, Dubare Elephant Camp, Namdroling Monastery",
		ImageKeyword: "coorg coffee plantation mist waterfall karnataka green",
		FamousFor:    "Coffee estates, spice plantations, river rafting, and Kodava cuisine",
	},
	{
		Name: "Wayanad", Location: "Wayanad, Kerala",
		Tagline:      "Lush green hills, tribal heritage, and misty mornings",
		Styles:       []string{"hill stations", "nature & landscape", "forests & wildlife", "adventure", "caves", "backwaters & lakes", "village/rural tourism"},
		BaseCost:     7000, CostPerDay: 1600,
		Distance:     "~640 km from Chennai", TravelTime: "10 hrs by bus",
		Highlight:    "Edakkal Caves, Banasura Sagar Dam, Pookode Lake, Chembra Peak trek",
		ImageKeyword: "wayanad hill station mist tea plantation kerala",
		FamousFor:    "Ancient Edakkal cave carvings, bamboo rafting, and spice gardens",
	},
	{
		Name: "Mussoorie", Location: "Mussoorie, Uttarakhand",
		Tagline:      "The Queen of Hills with panoramic Himalayan views",
		Styles:       []string{"hill stations", "mountains", "nature & landscape", "adventure", "waterfalls"},
		BaseCost:     8000, CostPerDay: 1800,
		Distance:     "~290 km from Delhi", TravelTime: "6 hrs by road",
		Highlight:    "Kempty Falls, Gun Hill, Lal Tibba, Camel's Back Road",
		ImageKeyword: "mussoorie hill station valley himalayan view uttarakhand",
		FamousFor:    "British-era architecture, Kempty Fall, and Mall Road views",
	},
	{
		Name: "Meghalaya", Location: "Shillong & Cherrapunji, Meghalaya",
		Tagline:      "The abode of clouds — living root bridges and waterfalls",
		Styles:       []string{"nature & landscape", "adventure", "forests & wildlife", "water-based", "waterfalls", "caves", "village/rural tourism", "backwaters & lakes"},
		BaseCost:     15000, CostPerDay: 3000,
		Distance:     "~1600 km from Delhi", TravelTime: "2.5 hrs by flight",
		Highlight:    "Living Root Bridges, Nohkalikai Falls, Mawlynnong (cleanest village), Umiam Lake",
		ImageKeyword: "meghalaya living root bridge waterfall mist green",
		FamousFor:    "World's wettest place, double-decker root bridges, and pristine caves",
	},
	{
		Name: "Spiti Valley", Location: "Kaza, Himachal Pradesh",
		Tagline:      "Middle land between India and Tibet — raw Himalayan beauty",
		Styles:       []string{"mountains", "adventure", "nature & landscape", "culture & heritage", "heritage sites", "village/rural tourism", "backwaters & lakes"},
		BaseCost:     18000, CostPerDay: 3500,
		Distance:     "~450 km from Shimla", TravelTime: "12+ hrs by road",
		Highlight:    "Key Monastery, Chandratal Lake, Kibber Village, fossil sites",
		ImageKeyword: "spiti valley monastery himalaya barren mountain blue sky",
		FamousFor:    "Buddhist monasteries, fossils at world's highest altitude, and star-gazing",
	},

	// Deserts & heritage
	{
		Name: "Jaisalmer", Location: "Jaisalmer, Rajasthan",
		Tagline:      "The Golden City — sand dunes and medieval magic",
		Styles:       []string{"deserts", "culture & heritage", "heritage sites", "nature & landscape", "adventure"},
		BaseCost:     10000, CostPerDay: 2200,
		Distance:     "~570 km from Jaipur", TravelTime: "10 hrs by train",
		Highlight:    "Sam Sand Dunes, Jaisalmer Fort, Patwon Ki Haveli, desert safari",
		ImageKeyword: "jaisalmer golden fort sand dunes desert rajasthan sunset",
		FamousFor:    "Living fort, camel safaris, and Thar Desert sunsets",
	},
	{
		Name: "Rajasthan — Jaipur & Udaipur", Location: "Jaipur & Udaipur, Rajasthan",
		Tagline:      "Royal grandeur, floating palaces, and desert heritage",
		Styles:       []string{"culture & heritage", "heritage sites", "deserts", "city life", "food & culinary", "museums & arts", "backwaters & lakes"},
		BaseCost:     14000, CostPerDay: 2800,
		Distance:     "~280 km from Delhi to Jaipur", TravelTime: "5 hrs by Shatabdi",
		Highlight:    "Hawa Mahal, Amer Fort, City Palace, Lake Pichola, Mehrangarh Fort",
		ImageKeyword: "jaipur pink city hawa mahal udaipur lake palace rajasthan",
		FamousFor:    "Pink City, Lake Palace, blue pottery, and Rajput history",
	},
	{
		Name: "Rann of Kutch", Location: "Bhuj, Gujarat",
		Tagline:      "The Great White Desert — the world's largest salt flat",
		Styles:       []string{"deserts", "nature & landscape", "culture & heritage", "heritage sites", "village/rural tourism"},
		BaseCost:     10000, CostPerDay: 2200,
		Distance:     "~400 km from Ahmedabad", TravelTime: "6 hrs by road",
		Highlight:    "Rann Utsav festival, white salt flats, flamingo colonies, Banni grasslands",
		ImageKeyword: "rann kutch white salt desert gujarat sunset festival",
		FamousFor:    "White Rann at full moon, crafts of the Kutchi artisans, and Rann Utsav",
	},
	{
		Name: "Hampi", Location: "Hampi, Karnataka",
		Tagline:      "Ruins of the Vijayanagara Empire — a UNESCO World Heritage Site",
		Styles:       []string{"culture & heritage", "heritage sites", "adventure", "nature & landscape", "temples & spiritual"},
		BaseCost:     6000, CostPerDay: 1500,
		Distance:     "~350 km from Bangalore", TravelTime: "7 hrs by road or night train",
		Highlight:    "Virupaksha Temple, Vittala Temple Stone Chariot, boulder landscape, banana plantations",
		ImageKeyword: "hampi vijayanagara ruins temple boulders karnataka",
		FamousFor:    "UNESCO ruins, unique boulder landscape, and sunrise views from Matanga Hill",
	},
	{
		Name: "Varanasi", Location: "Varanasi, Uttar Pradesh",
		Tagline:      "The eternal city — ghats, spirituality, and the Ganges",
		Styles:       []string{"culture & heritage", "heritage sites", "temples & spiritual", "food & culinary", "museums & arts"},
		BaseCost:     6000, CostPerDay: 1500,
		Distance:     "~800 km from Delhi", TravelTime: "10 hrs by Shatabdi or 1.5 hrs by flight",
		Highlight:    "Dashashwamedh Ghat Aarti, Kashi Vishwanath Temple, Sarnath, Manikarnika Ghat",
		ImageKeyword: "varanasi ghat ganges aarti ritual sunset spiritual",
		FamousFor:    "Evening Ganga Aarti, boat rides at sunrise, and Banarasi silk sarees",
	},
	{
		Name: "Agra — Taj Mahal & Fatehpur Sikri", Location: "Agra, Uttar Pradesh",
		Tagline:      "One of the Seven Wonders — a monument to eternal love",
		Styles:       []string{"culture & heritage", "heritage sites", "city life", "food & culinary", "museums & arts"},
		BaseCost:     5000, CostPerDay: 1500,
		Distance:     "~200 km from Delhi", TravelTime: "2 hrs by Gatiman Express train",
		Highlight:    "Taj Mahal at sunrise, Agra Fort, Fatehpur Sikri, Mehtab Bagh moonlight view",
		ImageKeyword: "taj mahal agra sunrise reflection marble white",
		FamousFor:    "Taj Mahal, Mughal architecture, and Petha sweet delicacy",
	},

	// Nature / wildlife
	{
		Name: "Kerala Backwaters", Location: "Alleppey (Alappuzha), Kerala",
		Tagline:      "Float through a network of canals on a traditional houseboat",
		Styles:       []string{"nature & landscape", "water-based", "backwaters & lakes", "forests & wildlife", "food & culinary", "village/rural tourism"},
		BaseCost:     12000, CostPerDay: 3000,
		Distance:     "~85 km from Kochi", TravelTime: "2 hrs by road",
		Highlight:    "Houseboat cruise, Vembanad Lake, Kuttanad paddy fields, snake boat races",
		ImageKeyword: "kerala backwaters houseboat canal coconut palm green",
		FamousFor:    "Houseboat stays, labyrinthine canals, and Nehru Trophy boat race",
	},
	{
		Name: "Sundarbans", Location: "Gosaba, West Bengal",
		Tagline:      "The world's largest mangrove forest — home of the Royal Bengal Tiger",
		Styles:       []string{"forests & wildlife", "nature & landscape", "adventure"},
		BaseCost:     8000, CostPerDay: 1800,
		Distance:     "~100 km from Kolkata", TravelTime: "3 hrs by road + ferry",
		Highlight:    "Tiger spotting, mangrove jungle safari, Sajnekhali Wildlife Sanctuary",
		ImageKeyword: "sundarbans mangrove tiger bengal forest river boat",
		FamousFor:    "Royal Bengal Tiger, UNESCO heritage mangroves, and unique ecosystem",
	},
	{
		Name: "Ranthambore National Park", Location: "Sawai Madhopur, Rajasthan",
		Tagline:      "India's best tiger safari — spot tigers in a medieval fort setting",
		Styles:       []string{"forests & wildlife", "adventure", "nature & landscape"},
		BaseCost:     12000, CostPerDay: 2800,
		Distance:     "~180 km from Jaipur", TravelTime: "3 hrs by road",
		Highlight:    "Tiger jeep safari, Ranthambore Fort, lake-side sighting zones",
		ImageKeyword: "ranthambore tiger safari jeep rajasthan national park",
		FamousFor:    "Most photographed tigers in India, historical fort within park",
	},
	{
		Name: "Jim Corbett National Park", Location: "Ramnagar, Uttarakhand",
		Tagline:      "India's oldest national park — a haven for tigers and elephants",
		Styles:       []string{"forests & wildlife", "adventure", "nature & landscape"},
		BaseCost:     10000, CostPerDay: 2200,
		Distance:     "~280 km from Delhi", TravelTime: "6 hrs by road",
		Highlight:    "Dhikala zone safari, elephant rides, Corbett Museum, Garjiya Devi Temple",
		ImageKeyword: "jim corbett elephant safari tiger forest uttarakhand",
		FamousFor:    "India's oldest tiger reserve, elephant safaris, and birdwatching",
	},
	{
		Name: "Kaziranga National Park", Location: "Golaghat, Assam",
		Tagline:      "UNESCO World Heritage — home to 2/3 of the world's one-horned rhinos",
		Styles:       []string{"forests & wildlife", "nature & landscape", "adventure"},
		BaseCost:     12000, CostPerDay: 2500,
		Distance:     "~250 km from Guwahati", TravelTime: "4 hrs by road",
		Highlight:    "Elephant-back rhino safari, bird watching, tiger sighting, tea estates",
		ImageKeyword: "kaziranga rhino elephant assam national park",
		FamousFor:    "UNESCO World Heritage, highest density of one-horned rhinos",
	},

	// Adventure / spiritual
	{
		Name: "Rishikesh", Location: "Rishikesh, Uttarakhand",
		Tagline:      "Adventure capital of India — rafting, yoga, and Ganges",
		Styles:       []string{"adventure", "temples & spiritual", "nature & landscape", "mountains"},
		BaseCost:     6000, CostPerDay: 1500,
		Distance:     "~240 km from Delhi", TravelTime: "5 hrs by road",
		Highlight:    "River rafting, Laxman Jhula, Beatles Ashram, Ganga Aarti at Triveni Ghat",
		ImageKeyword: "rishikesh river rafting ganga bridge spiritual yoga",
		FamousFor:    "Yoga capital of the world, white water rafting, and ashrams",
	},
	{
		Name: "Amritsar", Location: "Amritsar, Punjab",
		Tagline:      "The Golden Temple — a spiritual haven of gold and devotion",
		Styles:       []string{"temples & spiritual", "culture & heritage", "heritage sites", "food & culinary", "museums & arts"},
		BaseCost:     6000, CostPerDay: 1400,
		Distance:     "~460 km from Delhi", TravelTime: "6 hrs by train",
		Highlight:    "Golden Temple (Harmandir Sahib), Wagah Border ceremony, Jallianwala Bagh",
		ImageKeyword: "amritsar golden temple reflection water spiritual sikh",
		FamousFor:    "Golden Temple, langar (free community meal), and Wagah Border",
	},
	{
		Name: "Tirupati & Madurai", Location: "Tirupati, Andhra Pradesh",
		Tagline:      "India's most visited pilgrimage and the city of the Meenakshi Temple",
		Styles:       []string{"temples & spiritual", "culture & heritage", "heritage sites"},
		BaseCost:     5000, CostPerDay: 1200,
		Distance:     "~550 km from Chennai", TravelTime: "1.5 hrs by flight",
		Highlight:    "Venkateswara Temple (world's richest), Meenakshi Amman Temple",
		ImageKeyword: "tirupati temple gopuram south india spiritual",
		FamousFor:    "Tirumala temple, laddu prasadam, and ancient temple architecture",
	},

	// City life
	{
		Name: "Mumbai", Location: "Mumbai, Maharashtra",
		Tagline:      "The city that never sleeps — Bollywood, bazaars, and beaches",
		Styles:       []string{"city life", "culture & heritage", "heritage sites", "food & culinary", "beaches", "museums & arts"},
		BaseCost:     12000, CostPerDay: 2800,
		Distance:     "Hub city", TravelTime: "Direct",
		Highlight:    "Marine Drive, Colaba Causeway, Bollywood Studio Tour, Dharavi",
		ImageKeyword: "mumbai marine drive gateway india city skyline night",
		FamousFor:    "Bollywood, street food (vada pav), and marine drive sunsets",
	},

	// International destinations
	{
		Name: "Bali, Indonesia", Location: "Bali, Indonesia",
		Tagline:      "Island of the Gods — temples, rice terraces, and surf",
		Styles:       []string{"beaches", "islands", "temples & spiritual", "nature & landscape", "adventure", "food & culinary"},
		BaseCost:     35000, CostPerDay: 6000,
		Distance:     "~4 hrs by flight from major Indian cities", TravelTime: "4 hrs flight",
		Highlight:    "Ubud rice terraces, Tanah Lot Temple, Seminyak Beach, Mount Batur",
		ImageKeyword: "bali rice terrace temple beach indonesia tropical",
		FamousFor:    "Temple ceremonies, rice terraces, surf culture, and yoga retreats",
		International: true,
	},
	{
		Name: "Thailand — Bangkok & Phuket", Location: "Thailand",
		Tagline:      "Land of smiles — golden temples, street food, and tropical beaches",
		Styles:       []string{"beaches", "islands", "culture & heritage", "food & culinary", "city life", "adventure"},
		BaseCost:     30000, CostPerDay: 5000,
		Distance:     "~3 hrs from Chennai/Kolkata", TravelTime: "3-4 hrs flight",
		Highlight:    "Grand Palace Bangkok, Phi Phi Islands, Thai street food, elephant sanctuary",
		ImageKeyword: "thailand bangkok temple beach tropical islands",
		FamousFor:    "Vibrant street food, Buddhist temples, and stunning islands",
		International: true,
	},
	{
		Name: "Dubai, UAE", Location: "Dubai, UAE",
		Tagline:      "Where the desert meets the sky — luxury and superlatives",
		Styles:       []string{"city life", "adventure", "culture & heritage", "deserts", "water-based"},
		BaseCost:     45000, CostPerDay: 8000,
		Distance:     "~3 hrs from major Indian cities", TravelTime: "3 hrs flight",
		Highlight:    "Burj Khalifa, Dubai Mall, Desert Safari, Palm Jumeirah",
		ImageKeyword: "dubai burj khalifa skyline desert luxury",
		FamousFor:    "World's tallest building, tax-free shopping, and desert safaris",
		International: true,
	},
	{
		Name: "Maldives", Location: "Malé, Maldives",
		Tagline:      "Overwater bungalows, coral reefs, and infinite blue",
		Styles:       []string{"beaches", "islands", "water-based", "nature & landscape"},
		BaseCost:     60000, CostPerDay: 10000,
		Distance:     "~3 hrs from South India", TravelTime: "3 hrs flight",
		Highlight:    "Overwater villas, snorkeling with manta rays, bioluminescent beaches",
		ImageKeyword: "maldives overwater bungalow turquoise ocean coral reef",
		FamousFor:    "Most luxurious island getaway with unparalleled marine life",
		International: true,
	},
	{
		Name: "Nepal — Kathmandu & Pokhara", Location: "Nepal",
		Tagline:      "Roof of the world — Himalayas, temples, and trekking",
		Styles:       []string{"mountains", "adventure", "temples & spiritual", "nature & landscape", "snow"},
		BaseCost:     18000, CostPerDay: 3000,
		Distance:     "~1.5 hrs from Delhi/Kolkata", TravelTime: "1.5 hrs flight",
		Highlight:    "Everest Base Camp, Boudhanath Stupa, Phewa Lake, Annapurna Circuit",
		ImageKeyword: "nepal himalayas everest monastery kathmandu temple",
		FamousFor:    "Everest, Himalayan trekking, Buddhist culture, and adventure sports",
		International: true,
	},
	{
		Name: "Sri Lanka", Location: "Sri Lanka",
		Tagline:      "Pearl of the Indian Ocean — beaches, ruins, and elephants",
		Styles:       []string{"beaches", "culture & heritage", "heritage sites", "forests & wildlife", "nature & landscape", "temples & spiritual"},
		BaseCost:     22000, CostPerDay: 4000,
		Distance:     "~1 hr from Chennai", TravelTime: "1 hr flight",
		Highlight:    "Sigiriya Rock Fortress, Elephant Orphanage, Mirissa beach, Temple of Tooth",
		ImageKeyword: "sri lanka sigiriya rock fortress elephant beach temple",
		FamousFor:    "Ancient ruins, friendly elephants, Ceylon tea, and whale watching",
		International: true,
	},
	{
		Name: "Singapore", Location: "Singapore",
		Tagline:      "The Lion City — futuristic, multicultural, and immaculate",
		Styles:       []string{"city life", "food & culinary", "nature & landscape", "water-based", "museums & arts"},
		BaseCost:     40000, CostPerDay: 7000,
		Distance:     "~5 hrs from major Indian cities", TravelTime: "5 hrs flight",
		Highlight:    "Gardens by the Bay, Marina Bay Sands, Sentosa Island, hawker centers",
		ImageKeyword: "singapore marina bay sands garden city skyline night",
		FamousFor:    "Futuristic architecture, legendary hawker food, and Changi airport",
		International: true,
	},
	{
		Name: "Vietnam — Hanoi & Ha Long Bay", Location: "Vietnam",
		Tagline:      "Emerald bay, lantern-lit cities, and banh mi paradise",
		Styles:       []string{"nature & landscape", "culture & heritage", "food & culinary", "adventure", "water-based"},
		BaseCost:     28000, CostPerDay: 4500,
		Distance:     "~4 hrs from Delhi", TravelTime: "4 hrs flight",
		Highlight:    "Ha Long Bay cruise, Hoi An Old Town, Hanoi street food, rice terraces",
		ImageKeyword: "vietnam ha long bay boat karst emerald water",
		FamousFor:    "Halong Bay cruises, lantern festivals, French-Vietnamese cuisine",
		International: true,
	},
	{
		Name: "Japan — Tokyo & Kyoto", Location: "Tokyo & Kyoto, Japan",
		Tagline:      "Where ancient tradition meets cutting-edge technology",
		Styles:       []string{"culture & heritage", "heritage sites", "city life", "food & culinary", "temples & spiritual", "museums & arts", "adventure"},
		BaseCost:     55000, CostPerDay: 9000,
		Distance:     "~7 hrs by flight", TravelTime: "7 hrs flight",
		Highlight:    "Tokyo Tower, Fushimi Inari Shrine, Mt. Fuji, Shibuya Crossing, Akihabara",
		ImageKeyword: "japan tokyo temple cherry blossom fuji mountain",
		FamousFor:    "Cherry blossoms, sushi & ramen, bullet trains, and ancient temples",
		International: true,
	},
	{
		Name: "Turkey — Istanbul & Cappadocia", Location: "Istanbul & Cappadocia, Turkey",
		Tagline:      "Where East meets West — hot air balloons and ancient empires",
		Styles:       []string{"culture & heritage", "heritage sites", "adventure", "city life", "food & culinary", "museums & arts"},
		BaseCost:     40000, CostPerDay: 6500,
		Distance:     "~5 hrs by flight", TravelTime: "5 hrs flight",
		Highlight:    "Hagia Sophia, Cappadocia balloon rides, Blue Mosque, Grand Bazaar",
		ImageKeyword: "turkey cappadocia hot air balloon istanbul mosque",
		FamousFor:    "Hot air balloon rides, Byzantine architecture, Turkish cuisine",
		International: true,
	},
	{
		Name: "Greece — Athens & Santorini", Location: "Athens & Santorini, Greece",
		Tagline:      "Whitewashed islands, ancient ruins, and Mediterranean sunsets",
		Styles:       []string{"beaches", "islands", "culture & heritage", "heritage sites", "city life", "food & culinary"},
		BaseCost:     50000, CostPerDay: 8000,
		Distance:     "~7 hrs by flight", TravelTime: "7 hrs flight",
		Highlight:    "Acropolis of Athens, Santorini blue domes, Mykonos nightlife, Meteora monasteries",
		ImageKeyword: "greece santorini blue dome white church mediterranean sea",
		FamousFor:    "Aegean island hopping, ancient Greek ruins, and world-class sunsets",
		International: true,
	},
	{
		Name: "Switzerland — Zurich & Interlaken", Location: "Switzerland",
		Tagline:      "The land of Alps, chocolate, and pristine lakes",
		Styles:       []string{"mountains", "snow", "nature & landscape", "adventure", "backwaters & lakes", "city life"},
		BaseCost:     70000, CostPerDay: 12000,
		Distance:     "~8 hrs by flight", TravelTime: "8 hrs flight",
		Highlight:    "Jungfraujoch, Lake Lucerne, Matterhorn, Swiss Alps railway, Interlaken paragliding",
		ImageKeyword: "switzerland alps snow mountain lake zurich green village",
		FamousFor:    "Swiss Alps, chocolate, cheese, luxury watches, and scenic train rides",
		International: true,
	},
	{
		Name: "Egypt — Cairo & Luxor", Location: "Cairo & Luxor, Egypt",
		Tagline:      "Land of the Pharaohs — pyramids, temples, and the Nile",
		Styles:       []string{"culture & heritage", "heritage sites", "deserts", "adventure", "museums & arts"},
		BaseCost:     35000, CostPerDay: 5500,
		Distance:     "~5 hrs by flight", TravelTime: "5 hrs flight",
		Highlight:    "Great Pyramids of Giza, Sphinx, Valley of the Kings, Nile cruise, Karnak Temple",
		ImageKeyword: "egypt pyramids giza sphinx desert cairo ancient",
		FamousFor:    "Ancient pyramids, Pharaonic tombs, Nile River cruises, and hieroglyphs",
		International: true,
	},
	{
		Name: "Malaysia — Kuala Lumpur & Langkawi", Location: "Malaysia",
		Tagline:      "Twin towers, tropical islands, and a melting pot of cultures",
		Styles:       []string{"city life", "beaches", "islands", "food & culinary", "nature & landscape", "adventure"},
		BaseCost:     25000, CostPerDay: 4000,
		Distance:     "~4 hrs by flight", TravelTime: "4 hrs flight",
		Highlight:    "Petronas Twin Towers, Langkawi Sky Bridge, Batu Caves, Penang street food",
		ImageKeyword: "malaysia kuala lumpur petronas towers langkawi beach tropical",
		FamousFor:    "Twin towers, Langkawi beaches, multicultural food, and rainforest canopy walks",
		International: true,
	},
	{
		Name: "Cambodia — Siem Reap", Location: "Siem Reap, Cambodia",
		Tagline:      "Home of Angkor Wat — the world's largest religious monument",
		Styles:       []string{"culture & heritage", "heritage sites", "temples & spiritual", "adventure", "food & culinary", "village/rural tourism"},
		BaseCost:     20000, CostPerDay: 3000,
		Distance:     "~5 hrs by flight", TravelTime: "5 hrs flight (via Bangkok)",
		Highlight:    "Angkor Wat sunrise, Ta Prohm (Tomb Raider temple), Tonle Sap floating village",
		ImageKeyword: "cambodia angkor wat temple ruins sunrise ancient",
		FamousFor:    "Angkor Wat, ancient Khmer ruins, and vibrant pub street nightlife",
		International: true,
	},
	{
		Name: "Morocco — Marrakech & Sahara", Location: "Marrakech, Morocco",
		Tagline:      "Vibrant souks, Saharan dunes, and Moroccan magic",
		Styles:       []string{"deserts", "culture & heritage", "heritage sites", "adventure", "food & culinary", "city life", "village/rural tourism"},
		BaseCost:     35000, CostPerDay: 5000,
		Distance:     "~9 hrs by flight", TravelTime: "9 hrs flight",
		Highlight:    "Jemaa el-Fnaa square, Sahara desert camp, Atlas Mountains, Medina of Fez",
		ImageKeyword: "morocco marrakech sahara desert camel medina souk",
		FamousFor:    "Sahara camel treks, colourful medinas, tagine cuisine, and riads",
		International: true,
	},
	{
		Name: "South Korea — Seoul & Jeju", Location: "Seoul & Jeju Island, South Korea",
		Tagline:      "K-pop, ancient palaces, and volcanic island beauty",
		Styles:       []string{"city life", "culture & heritage", "heritage sites", "food & culinary", "nature & landscape", "islands", "museums & arts"},
		BaseCost:     45000, CostPerDay: 7500,
		Distance:     "~6 hrs by flight", TravelTime: "6 hrs flight",
		Highlight:    "Gyeongbokgung Palace, Jeju Hallasan, Myeongdong, DMZ tour, Korean BBQ streets",
		ImageKeyword: "south korea seoul palace cherry blossom jeju island",
		FamousFor:    "K-pop culture, Korean BBQ, ancient palaces, and Jeju volcanic island",
		International: true,
	},
	{
		Name: "Australia — Sydney & Melbourne", Location: "Sydney & Melbourne, Australia",
		Tagline:      "Opera House, Great Barrier Reef, and endless coastline",
		Styles:       []string{"city life", "beaches", "nature & landscape", "adventure", "food & culinary", "museums & arts", "forests & wildlife"},
		BaseCost:     80000, CostPerDay: 12000,
		Distance:     "~10 hrs by flight", TravelTime: "10 hrs flight",
		Highlight:    "Sydney Opera House, Great Barrier Reef, Twelve Apostles, Blue Mountains",
		ImageKeyword: "australia sydney opera house harbour bridge beach reef",
		FamousFor:    "Sydney Opera House, Great Barrier Reef, unique wildlife, and surf culture",
		International: true,
	},
	{
		Name: "New Zealand", Location: "Auckland & Queenstown, New Zealand",
		Tagline:      "Middle-earth landscapes — mountains, fjords, and adventure capital",
		Styles:       []string{"mountains", "adventure", "nature & landscape", "forests & wildlife", "backwaters & lakes", "snow"},
		BaseCost:     85000, CostPerDay: 13000,
		Distance:     "~12 hrs by flight", TravelTime: "12 hrs flight",
		Highlight:    "Milford Sound, Queenstown bungee jump, Hobbiton, Franz Josef Glacier",
		ImageKeyword: "new zealand milford sound mountains fjord green landscape",
		FamousFor:    "Lord of the Rings filming locations, bungee jumping, and pristine fjords",
		International: true,
	},
	{
		Name: "Spain — Barcelona & Madrid", Location: "Barcelona & Madrid, Spain",
		Tagline:      "Flamenco, Gaudí, tapas, and Mediterranean vibes",
		Styles:       []string{"city life", "culture & heritage", "heritage sites", "beaches", "food & culinary", "museums & arts", "adventure"},
		BaseCost:     55000, CostPerDay: 8500,
		Distance:     "~9 hrs by flight", TravelTime: "9 hrs flight",
		Highlight:    "Sagrada Familia, Alhambra Palace, Park Güell, La Rambla, Flamenco shows",
		ImageKeyword: "spain barcelona sagrada familia beach mediterranean",
		FamousFor:    "Gaudí's architecture, tapas culture, flamenco, and La Liga football",
		International: true,
	},
	{
		Name: "Italy — Rome & Venice", Location: "Rome & Venice, Italy",
		Tagline:      "Eternal city, floating canals, and the birthplace of the Renaissance",
		Styles:       []string{"culture & heritage", "heritage sites", "city life", "food & culinary", "museums & arts", "backwaters & lakes"},
		BaseCost:     60000, CostPerDay: 9500,
		Distance:     "~8 hrs by flight", TravelTime: "8 hrs flight",
		Highlight:    "Colosseum, Venice gondola rides, Vatican City, Trevi Fountain, Leaning Tower of Pisa",
		ImageKeyword: "italy rome colosseum venice canal gondola florence",
		FamousFor:    "Ancient Roman ruins, Venetian canals, pasta & pizza, and Renaissance art",
		International: true,
	},
	{
		Name: "Iceland — Reykjavik", Location: "Reykjavik, Iceland",
		Tagline:      "Land of fire and ice — Northern Lights and volcanic wonders",
		Styles:       []string{"nature & landscape", "adventure", "snow", "mountains", "waterfalls"},
		BaseCost:     90000, CostPerDay: 15000,
		Distance:     "~10 hrs by flight", TravelTime: "10 hrs flight (via Europe)",
		Highlight:    "Northern Lights, Blue Lagoon, Golden Circle, Jökulsárlón Glacier Lagoon",
		ImageKeyword: "iceland northern lights waterfall glacier volcanic landscape",
		FamousFor:    "Aurora Borealis, geothermal hot springs, glaciers, and whale watching",
		International: true,
	},
	{
		Name: "Mexico — Cancún & Mexico City", Location: "Cancún & Mexico City, Mexico",
		Tagline:      "Ancient Mayan ruins, turquoise Caribbean, and vibrant culture",
		Styles:       []string{"beaches", "culture & heritage", "heritage sites", "adventure", "food & culinary", "city life"},
		BaseCost:     50000, CostPerDay: 7000,
		Distance:     "~20 hrs by flight", TravelTime: "20 hrs flight (with stopover)",
		Highlight:    "Chichén Itzá pyramid, Cancún beaches, Cenote swimming, Street tacos, Lucha Libre",
		ImageKeyword: "mexico cancun beach chichen itza pyramid mayan ruins",
		FamousFor:    "Mayan pyramids, Caribbean beaches, cenotes for diving, and Mexican street food",
		International: true,
	},
	{
		Name: "London, UK", Location: "London, United Kingdom",
		Tagline:      "Royal palaces, world-class museums, and British charm",
		Styles:       []string{"city life", "culture & heritage", "heritage sites", "museums & arts", "food & culinary"},
		BaseCost:     65000, CostPerDay: 11000,
		Distance:     "~9 hrs by flight", TravelTime: "9 hrs flight",
		Highlight:    "Big Ben, Tower of London, British Museum, Buckingham Palace, West End shows",
		ImageKeyword: "london big ben tower bridge palace british skyline",
		FamousFor:    "Royal family heritage, free world-class museums, and West End theatre",
		International: true,
	},
	{
		Name: "Paris, France", Location: "Paris, France",
		Tagline:      "City of Love — art, fashion, and the Eiffel Tower",
		Styles:       []string{"city life", "culture & heritage", "heritage sites", "museums & arts", "food & culinary"},
		BaseCost:     60000, CostPerDay: 10000,
		Distance:     "~9 hrs by flight", TravelTime: "9 hrs flight",
		Highlight:    "Eiffel Tower, Louvre Museum, Champs-Élysées, Montmartre, Seine cruise",
		ImageKeyword: "paris eiffel tower seine river louvre french architecture",
		FamousFor:    "Eiffel Tower, Louvre art museum, French cuisine, and romantic ambiance",
		International: true,
	},
}
