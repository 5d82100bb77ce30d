package trips

import (
	"fmt"
	"strings"

	"travel-backend/internal/recommend"
)

// The prompt wording below is part of the contract with the model: it asks
// for minified JSON in the exact shape the parser expects and steers cost
// estimates toward real individual-traveler prices.

func buildRecommendationsPrompt(prefs recommend.Preferences) string {
	stylesStr := strings.Join(prefs.DestinationStyles, ", ")
	if stylesStr == "" {
		stylesStr = "mixed destinations (beaches, mountains, nature, culture)"
	}

	groupInfo := "solo traveler (1 person)"
	if prefs.TravelType == "group" {
		groupInfo = fmt.Sprintf("group of %d people", prefs.GroupSize)
	}

	travelScope := "can be international destinations worldwide"
	if prefs.TravelScope == "within_country" {
		travelScope = "WITHIN INDIA ONLY — do NOT suggest international destinations"
	}

	name := prefs.Name
	if name == "" {
		name = "Traveler"
	}

	return fmt.Sprintf(`You are an expert AI travel analyst who recommends REAL, AFFORDABLE tourist destinations based on CURRENT 2025-2026 data.

TRAVELER PROFILE:
- Name: %s
- Total Budget: %s %.0f (ENTIRE trip for %s)
- Travel Scope: %s
- Type: %s
- Duration: %d days
- Departing From: %s
- Preferred Destination Styles: %s

%s

%s

YOUR CORE MISSION:
Use Google Search to find REAL, CURRENT tourist destinations and ACTUAL 2025-2026 travel costs.
Think like a LOCAL TRAVELER — search for real bus/train/flight ticket prices, budget hotel rates,
and local food costs. NOT online tour package prices (unless user selected travel_agency).

IMPORTANT COST GUIDELINES:
- Search the internet for REAL ticket prices (e.g., "%s to Ooty bus ticket price 2025")
- Search for budget hotel/lodge prices at each destination
- The total cost should be what a REAL person would actually spend, not inflated tour prices
- For nearby destinations (< 300 km), transport cost should be realistically low (bus: INR 200-800, train: INR 150-600)
- Prioritize destinations CLOSEST to %s first for low budgets
- A solo traveler with INR 3000-7000 for 2-3 days CAN visit hill stations near their city by bus/train

YOUR TASK — provide two groups of recommendations:

GROUP 1 — WITHIN BUDGET (mark "within_budget": true):
  Find 5-6 real tourist destinations that:
  • STRICTLY match: %s
  • estimated_total_cost ≤ %s %.0f
  • Are reachable from %s by %s
  • Cost calculated for %d days for %s
  • Start with NEAREST affordable destinations, then expand outward
  • For low budgets (< INR 10000), focus on destinations within 200-500 km of %s

GROUP 2 — BEYOND BUDGET / ASPIRATIONAL (mark "within_budget": false):
  Find 2-3 destinations that:
  • Cost 20-50%% MORE than budget (%s %d to %s %d)
  • Still match the styles but may be further away or more premium
  • Include "over_budget_note" explaining why the extra spend is worth it
  • These can be in other states or further locations

CRITICAL RULES:
- %s
- All costs in %s, based on REAL 2025-2026 prices found via internet search
- Show INDIVIDUAL traveler costs, NOT travel agency packages (unless travel_agency mode)
- estimated_total_cost must reflect what a real person would ACTUALLY spend
- Include cost_per_day as a realistic daily spending figure

Return ONLY valid minified JSON (no markdown, no code blocks, no explanations):
{"recommendations":[{"id":1,"name":"Destination","location":"City, State/Country","tagline":"Exciting 1-line description","distance_from_start":"%s to destination distance in km","travel_time":"X hours by %s","within_budget":true,"estimated_total_cost":3500,"currency":"%s","cost_per_day":1200,"best_for":["Hill Stations","Nature"],"highlight":"Top 3 must-see attractions","image_keyword":"scenic landscape keyword for image search","famous_for":"What makes this place unique and special","transport_cost":"Round-trip %s cost from %s","over_budget_note":null},...more...],"ai_summary":"Personalized 2-3 line summary for %s explaining the recommendations."}`,
		name, prefs.Currency, prefs.Budget, groupInfo,
		travelScope, groupInfo, prefs.NumDays, prefs.FromLocation, stylesStr,
		costInstruction(prefs),
		foodInstruction(prefs.FoodAccommodation),
		prefs.FromLocation, prefs.FromLocation,
		stylesStr, prefs.Currency, prefs.Budget, prefs.FromLocation, prefs.TravelMedium,
		prefs.NumDays, groupInfo, prefs.FromLocation,
		prefs.Currency, int(prefs.Budget*1.2), prefs.Currency, int(prefs.Budget*1.5),
		travelScope, prefs.Currency,
		prefs.FromLocation, prefs.TravelMedium, prefs.Currency,
		prefs.TravelMedium, prefs.FromLocation, name)
}

// costInstruction steers the model toward the right pricing basis for the
// chosen travel medium: real individual ticket prices for bus/train/flight,
// package prices only for travel_agency.
func costInstruction(prefs recommend.Preferences) string {
	from := prefs.FromLocation
	switch prefs.TravelMedium {
	case "travel_agency":
		return fmt.Sprintf(`TRAVEL MODE: TRAVEL AGENCY PACKAGE
The user wants a TRAVEL AGENCY PACKAGE. The estimated_total_cost should be the TOTAL PACKAGE COST
that a travel agency would charge, including transport, accommodation, food, sightseeing, and guide.
Search for ACTUAL travel agency package prices from popular agencies like MakeMyTrip, Yatra, IRCTC tourism,
state tourism packages for %d days trips from %s.
This is THE ONLY mode where you should quote package prices.`, prefs.NumDays, from)
	case "bus":
		return fmt.Sprintf(`TRAVEL MODE: BUS (Individual Travel — NOT package tour)
The user is traveling INDEPENDENTLY by bus. DO NOT show travel agency package prices.
Calculate costs as an INDIVIDUAL BUDGET TRAVELER would spend:
- Transport: Search for ACTUAL government bus (TNSTC, KSRTC, APSRTC, etc.) and private bus ticket prices from %s.
  Example: Chennai to Ooty by government bus = INR 400-600, private sleeper = INR 700-1000.
- Accommodation: Budget lodges, dormitories, OYO rooms (INR 400-1200/night for budget).
- Food: Local restaurants, dhabas, street food (INR 150-300/day for budget meals).
- Sightseeing: Entry fees to tourist spots, local auto fares.
Keep costs REALISTIC for a budget backpacker/individual traveler using public bus transport.`, from)
	case "train":
		return fmt.Sprintf(`TRAVEL MODE: TRAIN (Individual Travel — NOT package tour)
The user is traveling INDEPENDENTLY by train. DO NOT show travel agency package prices.
Calculate costs as an INDIVIDUAL TRAVELER would spend:
- Transport: Search for ACTUAL Indian Railways ticket prices from %s.
  Use Sleeper class / 3AC / 2AC prices based on budget. Example: Chennai to Coimbatore sleeper = INR 200-350, 3AC = INR 600-900.
- Accommodation: Budget hotels, lodges, OYO rooms (INR 400-1500/night for budget).
- Food: Local restaurants, station food, street food (INR 150-400/day).
- Sightseeing: Entry fees, local transport (auto/bus) at destination.
Keep costs REALISTIC for individual train travelers, NOT tour packages.`, from)
	case "flight":
		return fmt.Sprintf(`TRAVEL MODE: FLIGHT (Individual Travel — NOT package tour)
The user is traveling INDEPENDENTLY by flight. DO NOT show travel agency package prices.
Calculate costs as an INDIVIDUAL TRAVELER would spend:
- Transport: Search for ACTUAL economy flight ticket prices from %s (IndiGo, SpiceJet, Air India, etc.).
  Example: Chennai to Goa one-way = INR 2500-5000 depending on advance booking.
- Accommodation: Budget to mid-range hotels (INR 800-2500/night).
- Food: Local restaurants (INR 200-500/day).
- Sightseeing: Entry fees, cab/auto at destination.
Keep costs REALISTIC for an individual flight traveler, NOT tour packages.`, from)
	default:
		return fmt.Sprintf(`TRAVEL MODE: ANY (Individual Travel — NOT package tour)
Calculate costs for the CHEAPEST available individual transport option (bus, train, or flight).
DO NOT use travel agency/tour package prices. Show raw individual travel costs:
- Transport: Actual bus/train/flight ticket costs from %s
- Accommodation: Budget lodges/hotels
- Food: Local meals
- Sightseeing: Entry fees, local transport`, from)
	}
}

func foodInstruction(foodAccommodation string) string {
	if foodAccommodation == "without" {
		return `BUDGET EXCLUDES food & accommodation. estimated_total_cost = Transport + Sightseeing ONLY.
The user arranges their own food and stay. Do NOT include hotel or food costs in estimated_total_cost.`
	}
	return `BUDGET INCLUDES: Transport + Accommodation + Food + Sightseeing = estimated_total_cost
Include realistic accommodation (budget lodges/hotels) and food (local restaurants/dhabas) in the total.`
}

func buildDetailsPrompt(destinationName string, prefs recommend.Preferences) string {
	groupSize := 1
	if prefs.TravelType == "group" {
		groupSize = prefs.GroupSize
	}

	mediumNote := fmt.Sprintf("Show INDIVIDUAL traveler costs for %s transport. Use real %s ticket prices, NOT tour package prices. Search for actual ticket costs.",
		prefs.TravelMedium, prefs.TravelMedium)
	if prefs.TravelMedium == "travel_agency" {
		mediumNote = "Show TRAVEL AGENCY PACKAGE costs in the cost breakdown."
	}

	return fmt.Sprintf(`You are a comprehensive travel guide expert providing real, detailed information about "%s".

Traveler context:
- Coming from: %s
- Budget: %s %.0f total for %d days
- Group: %d person(s) traveling %s
- Travel mode: %s
- %s

Provide REAL, ACCURATE, SPECIFIC, and CURRENT 2025-2026 information by searching the internet. Use actual names of places, restaurants, hotels, and current ticket prices.
For the cost_breakdown, use REALISTIC individual travel costs (actual bus/train/flight tickets, budget lodges, local food) NOT inflated tour package prices.

IMPORTANT for events_festivals: Search the internet for REAL, WELL-KNOWN festivals and cultural events that actually take place at or near "%s". Include the exact months they occur, what rituals/activities happen, and why travelers should attend. These must be GENUINE festivals, NOT generic placeholders like "Local Festival" or "Cultural Event".

Return ONLY valid minified JSON (no markdown):
{"name":"%s","full_location":"Full city, state/country","distance_from_start":"Exact distance from %s","overview":"Rich 4-sentence description of why this place is amazing and unique","famous_for":["specific thing 1","specific thing 2","specific thing 3","specific thing 4","specific thing 5"],"best_season":"Specific best months with reason e.g. Oct-Mar (cool, dry weather perfect for sightseeing)","tourist_spots":[{"name":"Real Attraction Name","description":"What makes it special and must-visit","entry_fee":"%s amount or Free"},...5 spots],"food_spots":[{"name":"Real Restaurant or Food Street Name","specialty":"Specific local dish","avg_cost":"%s per person"},...4 spots],"travel_options":[{"mode":"Flight/Train/Bus","duration":"X hrs","cost":"%s approx one-way","from":"%s"},...3 options],"accommodation":[{"type":"Budget/Mid-range/Luxury","name":"Real hotel or hostel example","cost_per_night":"%s amount"},...3 options],"events_festivals":[{"name":"Actual Festival Name (e.g. Onam, Pushkar Camel Fair, Sunburn Festival)","month":"Specific months (e.g. August-September, November, December)","description":"2-3 sentence vivid description of what happens — rituals, performances, food, atmosphere"},...4 to 5 REAL festivals/cultural events],"cost_breakdown":{"travel_to_destination":"%s round trip from %s","accommodation_total":"%s for %d nights","food_total":"%s for %d days","sightseeing_total":"%s","miscellaneous":"%s","grand_total":"%s"},"travel_tips":["Tip 1: specific actionable tip","Tip 2: best time to visit specific places","Tip 3: what to avoid","Tip 4: local cultural etiquette"],"local_transport":"Specific transport options with costs e.g. Auto-rickshaw: INR 20-50/km, Ola/Uber available"}`,
		destinationName,
		prefs.FromLocation, prefs.Currency, prefs.Budget, prefs.NumDays,
		groupSize, prefs.TravelType, prefs.TravelMedium, mediumNote,
		destinationName,
		destinationName, prefs.FromLocation,
		prefs.Currency, prefs.Currency, prefs.Currency, prefs.FromLocation, prefs.Currency,
		prefs.Currency, prefs.FromLocation, prefs.Currency, prefs.NumDays,
		prefs.Currency, prefs.NumDays, prefs.Currency, prefs.Currency, prefs.Currency)
}

func buildSuggestionsPrompt(query string) string {
	return fmt.Sprintf(`List exactly 6 real Indian cities or popular tourist locations matching "%s".
Return ONLY a JSON array of strings, no other text:
["Location 1, State", "Location 2, State", ...]`, query)
}
