package trips

import "strings"

// festivalsDB maps destination keywords to real festivals shown on the
// fallback details page. Keys are matched by substring in either direction
// so "Kerala Backwaters" finds "kerala".
var festivalsDB = map[string][]festival{
	"goa": {
		{Name: "Carnival of Goa", Month: "February", Description: "A 3-day pre-Lenten celebration with colorful parades, street dancing, live music, and elaborate floats through Panaji. King Momo rules the festivities with revelry and feasting."},
		{Name: "Sunburn Festival", Month: "December", Description: "Asia's largest electronic dance music festival held on the beaches of Goa, featuring world-class DJs, stunning light shows, and beach parties lasting three days."},
		{Name: "Shigmo Festival", Month: "March", Description: "Goa's version of Holi — a grand spring festival with traditional folk dances, elaborate street processions, colorful floats, and vibrant cultural performances."},
		{Name: "Feast of St. Francis Xavier", Month: "December (3rd)", Description: "A major Catholic pilgrimage at Old Goa's Basilica of Bom Jesus, venerating the patron saint's relics with Masses, processions, and a large fair."},
	},
	"manali": {
		{Name: "Winter Carnival", Month: "January", Description: "A week-long winter celebration featuring skiing competitions, folk dances, music performances, beauty pageants, and bonfire nights against the backdrop of snow-clad Himalayas."},
		{Name: "Hadimba Devi Festival (Dhungri Mela)", Month: "May", Description: "A vibrant 3-day cultural fair at the Hadimba Temple with traditional Kullu folk dances, local handicraft stalls, and rituals honoring Goddess Hadimba."},
		{Name: "Dussehra (Kullu Dussehra)", Month: "October", Description: "Unlike the rest of India, Kullu Dussehra BEGINS on Vijayadashami and lasts 7 days. Over 200 village deities are brought in grand processions to Dhalpur Maidan."},
	},
	"kerala": {
		{Name: "Onam", Month: "August–September", Description: "Kerala's grandest harvest festival spanning 10 days — featuring spectacular Pookalam (flower rangoli), Onasadya (26-course feast on banana leaves), Vallam Kali (snake boat races), and Pulikali (tiger dance)."},
		{Name: "Nehru Trophy Boat Race", Month: "August (2nd Saturday)", Description: "The most famous snake boat race in India, held on Punnamada Lake in Alleppey. Over 100-foot-long Chundan Vallams race to the deafening cheers of lakhs of spectators."},
		{Name: "Thrissur Pooram", Month: "April–May", Description: "A spectacular temple festival in Thrissur featuring a grand procession of 30+ caparisoned elephants, traditional Panchavadyam percussion orchestra, and a breathtaking fireworks display at dawn."},
		{Name: "Theyyam Season", Month: "November–March", Description: "Ancient ritualistic dance form performed in temples across North Kerala. Dancers adorned with elaborate costumes and face paint become living gods in a trance-like devotional performance."},
	},
	"rajasthan": {
		{Name: "Pushkar Camel Fair", Month: "November", Description: "The world's largest camel fair in Pushkar — thousands of camels traded, decorated, and raced. Includes folk performances, hot air balloon rides, and a surreal moonlit desert atmosphere."},
		{Name: "Desert Festival Jaisalmer", Month: "February", Description: "A 3-day extravaganza on Sam Sand Dunes featuring camel races, turban-tying contests, folk music, puppet shows, and a mesmerizing Mr. Desert competition."},
		{Name: "Gangaur Festival", Month: "March–April", Description: "A vibrant Rajasthani festival celebrating Goddess Gauri (Parvati). Women dress in colorful attire, carry decorated idols through processions, and pray for marital bliss."},
		{Name: "Mewar Festival (Udaipur)", Month: "March–April", Description: "Udaipur's cultural extravaganza welcoming spring with traditional songs, dances, stunning processions to Lake Pichola, and fireworks lighting up the City of Lakes."},
	},
	"jaisalmer": {
		{Name: "Desert Festival", Month: "February", Description: "A 3-day festival on Sam Sand Dunes with folk music, camel races, turban-tying contests, and Mr. Desert competition. The golden fort glows as the backdrop for cultural performances."},
		{Name: "Gangaur Festival", Month: "March–April", Description: "Women carry beautifully decorated clay idols of Goddess Gauri through the narrow lanes of Jaisalmer Fort in colorful processions with folk songs."},
		{Name: "Marwar Festival", Month: "October", Description: "A celebration of Rajasthani folk heroes through music and dance. Performances of Maand (classical singing), folk dances, and puppet shows bring Marwar's heritage alive."},
	},
	"ladakh": {
		{Name: "Hemis Festival", Month: "June–July", Description: "Ladakh's biggest monastery festival at Hemis Gompa celebrating Guru Padmasambhava's birthday. Monks perform sacred Cham dances with colorful masks and elaborate brocade costumes."},
		{Name: "Ladakh Festival", Month: "September", Description: "A 15-day government-organized cultural showcase featuring traditional archery, polo matches, masked dances, yak races, and Ladakhi folk performances."},
		{Name: "Losar (Ladakhi New Year)", Month: "December–January", Description: "The Ladakhi New Year celebration with Buddhist rituals, family gatherings, traditional food like Khapse (fried pastry), and two weeks of merrymaking."},
	},
	"varanasi": {
		{Name: "Dev Deepawali", Month: "November", Description: "The 'Festival of Lights of the Gods' — over a million earthen lamps (diyas) light up the 80+ ghats of the Ganges. A breathtaking spectacle with fireworks, aarti, and music on full moon night."},
		{Name: "Ganga Mahotsav", Month: "November", Description: "A 5-day cultural festival coinciding with Dev Deepawali featuring classical music, dance performances, wrestling bouts, and the spectacular illumination of all ghats."},
		{Name: "Maha Shivaratri", Month: "February–March", Description: "One of the holiest nights at the Kashi Vishwanath Temple. Thousands of devotees throng the temple for night-long prayers, abhishekam, and the sacred procession (Baraat) of Lord Shiva."},
		{Name: "Holi (Rangbhari Ekadashi)", Month: "March", Description: "Varanasi's unique Holi at Manikarnika Ghat blends colors with spirituality. The entire city erupts in color, thandai (bhang drink), and folk music at every ghat."},
	},
	"rishikesh": {
		{Name: "International Yoga Festival", Month: "March (1st week)", Description: "A 7-day global yoga gathering at Parmarth Niketan ashram attracting thousands of yoga practitioners. Features sessions by world-renowned yogis, meditation, and Ganga Aarti."},
		{Name: "Ganga Dussehra", Month: "May–June", Description: "Celebrating the descent of River Ganga to Earth. Thousands float diyas on the Ganges with special puja ceremonies and cultural processions along the riverbanks."},
		{Name: "Maha Shivaratri", Month: "February–March", Description: "A grand celebration at Ram Jhula and Lakshman Jhula with all-night Shiva chanting, special aarti, and spiritual gatherings at riverside temples."},
	},
	"andaman": {
		{Name: "Island Tourism Festival", Month: "January", Description: "A 10-day cultural fiesta in Port Blair featuring dance shows from mainland India and Andaman's indigenous tribes, adventure sport exhibitions, and local handicraft bazaars."},
		{Name: "Beach Festival", Month: "April–May", Description: "Water sports competitions, sandcastle building, beach volleyball, and musical performances along the pristine beaches of the Andaman Islands."},
		{Name: "Subhash Mela", Month: "January (23rd)", Description: "Commemorating Netaji Subhash Chandra Bose's birth anniversary with a grand fair at Port Blair featuring cultural shows, exhibitions, and patriotic events."},
	},
	"hampi": {
		{Name: "Hampi Utsav (Vijaya Vittala Festival)", Month: "November", Description: "A grand 3-day cultural extravaganza among the ruins of Vijayanagara Empire. Includes classical dance, music concerts, puppet shows, processions with decorated elephants, and a fireworks finale."},
		{Name: "Virupaksha Car Festival", Month: "February", Description: "A massive chariot procession at the Virupaksha Temple — the towering wooden chariot is pulled through Hampi's main bazaar street by hundreds of devotees."},
		{Name: "Purandaradasa Festival", Month: "January–February", Description: "A 3-day Carnatic music festival commemorating the legendary musician Purandaradasa with concerts by top musicians amid Hampi's ancient temple setting."},
	},
	"coorg": {
		{Name: "Kaveri Sankramana", Month: "October", Description: "The sacred festival marking the rise of River Kaveri at Talakaveri. Thousands gather at the spring's origin to witness the miraculous gush of water at an auspicious moment."},
		{Name: "Kodava Hockey Festival", Month: "March–April", Description: "The largest hockey tournament in Asia, organized in Kodagu. A major cultural gathering for the Kodava community with folk performances and traditional feasts."},
		{Name: "Blossom Flower Show", Month: "April", Description: "A vibrant display of Coorg's exotic flowers, coffee blossoms, and ornamental plants at Raja's Seat garden with cultural programs and local food stalls."},
	},
	"meghalaya": {
		{Name: "Shad Suk Mynsiem (Weiking Dance)", Month: "April", Description: "The Khasi spring thanksgiving festival in Shillong — women dressed in golden silk and coral crowns perform graceful dances while men wear feathered headgear in a spectacular open-air celebration."},
		{Name: "Behdienkhlam", Month: "July", Description: "The largest Pnar (Jaintia) festival in Jowai — a dramatic rain-invocation ceremony where huge decorated wooden structures are dunked into a mud pit amid frenzied dancing."},
		{Name: "Nongkrem Dance Festival", Month: "November", Description: "A 5-day Khasi harvest festival near Shillong featuring sacred ritual dances at the Smit village, goat sacrifice, archery competitions, and a vibrant fair."},
	},
	"mumbai": {
		{Name: "Ganesh Chaturthi (Ganapati Festival)", Month: "August–September", Description: "Mumbai's biggest festival — millions of devotees install Ganesh idols at home and in pandals for 10 days. The grand Visarjan procession goes on for 24+ hours with music, dance, and emotion."},
		{Name: "Kala Ghoda Arts Festival", Month: "February", Description: "A 9-day art extravaganza in South Mumbai's Kala Ghoda area with street art installations, literature events, music, dance performances, food stalls, and workshops."},
		{Name: "Navratri & Dandiya Nights", Month: "October", Description: "Mumbai comes alive with organized Dandiya Raas events in grounds across the city. Navratri garba nights at venues like NSCI Dome attract lakhs of dancers."},
		{Name: "Banganga Festival", Month: "January", Description: "A 2-day classical music festival at the ancient Banganga Tank in Malabar Hill — top Hindustani musicians perform against the backdrop of this 1000-year-old heritage site."},
	},
	"amritsar": {
		{Name: "Baisakhi", Month: "April (13th)", Description: "The Sikh harvest New Year celebrated grandly at the Golden Temple with special prayers (Akhand Path), vibrant Bhangra, processions (Nagar Kirtan), and a spectacular fireworks display."},
		{Name: "Guru Nanak Jayanti", Month: "November", Description: "The birth anniversary of Guru Nanak celebrated with a 48-hour Akhand Path, serene Prabhat Pheris (dawn processions), and massive community langars serving millions."},
		{Name: "Wagah Border Retreat Ceremony", Month: "Daily (year-round)", Description: "Not a festival per se, but an electrifying daily ceremony at the India-Pakistan border with high-stepping soldiers, patriotic fervor, and thousands of cheering spectators."},
	},
	"bali": {
		{Name: "Nyepi (Day of Silence)", Month: "March", Description: "Bali's unique Hindu New Year — the entire island shuts down for 24 hours. No lights, no travel, no activity. The night before features Ogoh-Ogoh parade with giant demon effigies."},
		{Name: "Galungan & Kuningan", Month: "Varies (210-day cycle)", Description: "A 10-day Balinese Hindu celebration of good over evil. Temples are decorated with bamboo Penjor poles, families offer prayers, and traditional Barong dances fill the streets."},
		{Name: "Ubud Writers & Readers Festival", Month: "October", Description: "Southeast Asia's leading literary festival held in Ubud featuring international authors, workshops, cultural performances, and discussions amid rice paddies."},
	},
	"thailand": {
		{Name: "Songkran (Thai New Year Water Festival)", Month: "April (13–15)", Description: "The world-famous Thai water festival — the entire country erupts in a massive water fight for 3 days. Traditional rituals include pouring water on elders' hands for blessings."},
		{Name: "Loy Krathong", Month: "November", Description: "The enchanting 'Festival of Lights' where thousands of candle-lit banana leaf boats (krathongs) are released on rivers. In Chiang Mai, sky lanterns (Yi Peng) light up the night sky."},
		{Name: "Full Moon Party (Koh Phangan)", Month: "Monthly", Description: "The legendary monthly beach party on Haad Rin Beach with 20,000+ revelers, neon body paint, fire dancers, and DJs playing until dawn."},
	},
	"dubai": {
		{Name: "Dubai Shopping Festival (DSF)", Month: "December–January", Description: "A month-long mega shopping event with massive discounts, daily raffles (win luxury cars and gold!), global village, fireworks, and entertainment shows across the city."},
		{Name: "Dubai Food Festival", Month: "February–March", Description: "A 23-day culinary celebration with pop-up restaurants, food trucks, celebrity chef events, and the famous 'Beach Canteen' along Jumeirah Beach."},
		{Name: "Dubai International Film Festival", Month: "December", Description: "A premier regional film festival showcasing Arab and international cinema with red carpet premieres, filmmaker talks, and outdoor screenings under the stars."},
	},
	"nepal": {
		{Name: "Dashain (Durga Puja)", Month: "October", Description: "Nepal's biggest and longest festival lasting 15 days. Families gather for elaborate feasts, kite flying, animal sacrifices to Goddess Durga, and receiving tika (sacred vermillion) from elders."},
		{Name: "Holi (Festival of Colors)", Month: "March", Description: "Celebrated with wild enthusiasm in Kathmandu's Durbar Square — water balloons, colored powder, music, and dancing fill the streets for two days."},
		{Name: "Indra Jatra", Month: "September", Description: "A spectacular 8-day festival in Kathmandu with the chariot procession of the Living Goddess (Kumari), masked dances, and traditional Newari feasting."},
	},
	"singapore": {
		{Name: "Chinese New Year (Chinatown)", Month: "January–February", Description: "Spectacular celebrations in Chinatown with elaborate street decorations, lion dances, Chingay parade (Asia's largest street performance), and a massive River Hongbao festival."},
		{Name: "National Day (NDP)", Month: "August (9th)", Description: "Singapore's birthday celebration at Marina Bay with a jaw-dropping military parade, iconic Red Lions sky dive, NDP songs, and Southeast Asia's most impressive fireworks display."},
		{Name: "Deepavali (Little India)", Month: "October–November", Description: "Little India transforms into a dazzling corridor of lights and decorations. Night bazaars, cultural performances, and the entire Serangoon Road glowing with festive illuminations."},
	},
	"ooty": {
		{Name: "Ooty Flower Show", Month: "May", Description: "A spectacular 3-day exhibition at the Botanical Gardens showcasing rare and exotic flowers, roses, dahlias, and ornamental plants grown in the Nilgiris. Attracts over 1 lakh visitors."},
		{Name: "Tea and Tourism Festival", Month: "December–January", Description: "Celebrating Ooty's tea heritage with tea-tasting sessions, estate tours, cultural performances, and nature walks through the rolling tea plantations of the Nilgiris."},
		{Name: "Summer Festival", Month: "May–June", Description: "A cultural fiesta featuring boat races on Ooty Lake, horticulture exhibitions, tribal dance performances, and night bazaars in the cool Nilgiri summer weather."},
	},
	"kodaikanal": {
		{Name: "Summer Festival", Month: "May", Description: "A 3-day celebration organized by the Tamil Nadu Tourism Department with flower shows, dog shows, cultural concerts by top artists, and boat races on Kodai Lake."},
		{Name: "Pongal Celebrations", Month: "January", Description: "The Tamil harvest festival celebrated with traditional rituals, Jallikattu references, Pongal cooking in open pots, folk dances, and kolam art competitions."},
	},
	"pondicherry": {
		{Name: "Bastille Day", Month: "July (14th)", Description: "A unique French heritage celebration in Pondicherry — the only place in India that celebrates France's national day with parades, French tricolor decorations, and cultural events in the French Quarter."},
		{Name: "International Yoga Festival", Month: "January", Description: "A 7-day gathering at Sri Aurobindo Ashram and Auroville with yoga workshops, meditation sessions, and spiritual talks by renowned practitioners from around the world."},
		{Name: "Masquerade Festival", Month: "February–March", Description: "Pondicherry's Mardi Gras-inspired carnival with masked processions, colorful costumes, float parades through the French Quarter, and live music performances on the promenade."},
	},
	"spiti": {
		{Name: "Losar (Spitian New Year)", Month: "January", Description: "Spiti's Buddhist New Year celebration with devil dances at Ki and Tabo monasteries, special prayers, feasting on traditional dishes like Thukpa, and the entire valley decorated with prayer flags."},
		{Name: "Cham Dance Festival (at Ki Monastery)", Month: "June–July", Description: "Sacred masked dances performed by monks at the spectacular Ki Monastery depicting the triumph of good over evil. Attended by villagers from across the Spiti Valley."},
		{Name: "Fagli Festival", Month: "February", Description: "A colorful carnival-like winter festival with masked performances, folk singing, and community feasting — Spiti's way of chasing away winter evil spirits."},
	},
	"darjeeling": {
		{Name: "Darjeeling Carnival", Month: "November–December", Description: "A week-long winter celebration with parades, live bands, beauty pageants, cultural shows, food stalls, and activities along the mall road and Chowrasta area."},
		{Name: "Losar (Tibetan New Year)", Month: "February–March", Description: "Celebrated by the Tibetan community in Darjeeling with monastery prayers, Cham dances, butter sculptures, and festive gatherings."},
		{Name: "Tea Tourism Festival", Month: "October", Description: "Celebrating Darjeeling's legendary tea heritage — tea estate tours, tea tasting, tea plucking experiences, and cultural programs in the misty tea gardens."},
	},
}

// genericFestivals are real pan-Indian festivals used when no destination
// key matches.
var genericFestivals = []festival{
	{Name: "Diwali (Festival of Lights)", Month: "October–November", Description: "India's grandest festival celebrated with millions of oil lamps, fireworks, rangoli art, and sweets. Homes are cleaned and decorated, and families gather for Lakshmi Puja."},
	{Name: "Holi (Festival of Colors)", Month: "March", Description: "A joyous spring celebration where people drench each other in colored powder and water. Music, dance, and traditional drinks like thandai mark this festival of love and forgiveness."},
	{Name: "Makar Sankranti / Pongal", Month: "January (14th)", Description: "A harvest festival celebrated across India with kite flying (North) or Pongal cooking (South). Marks the sun's transition into Capricorn and the end of winter."},
}

// staticFestivals returns real festivals for a destination, matching the
// name against the database keys in both directions before falling back to
// pan-Indian festivals.
func staticFestivals(destinationName string) []festival {
	nameLower := strings.ToLower(destinationName)
	for key, festivals := range festivalsDB {
		if strings.Contains(nameLower, key) || strings.Contains(key, nameLower) {
			return festivals
		}
	}
	for key, festivals := range festivalsDB {
		for _, word := range strings.Fields(key) {
			if strings.Contains(nameLower, word) {
				return festivals
			}
		}
	}
	return genericFestivals
}
