package checkout

// pickupCenters lists the logistics terminals customers may collect from,
// keyed by region.
var pickupCenters = map[string][]string{
	"Abia": {
		"Aba: No 5 Asa Road, Former/Old Nitel Building, Aba",
	},
	"Adamawa": {
		"Yola: Yola Center",
	},
	"Akwa Ibom": {
		"Uyo: 3, Monsignor Akpan Avenue, Itam Industrial Layout, Opposite Timber Market",
	},
	"Anambra": {
		"Awka: Elite Shopping Complex, Opposite Crunchies fries, Enugu/Onitsha Expressway",
		"Onitsha: 2 Awka Road, By DMGS Junction, Beside All Saints Anglican Cathedral",
	},
	"Bauchi": {
		"Bauchi: Mai Jama'a Plaza, Number 7, Shop 7, Yandoka Road",
	},
	"Bayelsa": {
		"Yenagoa: Yenagoa Center",
	},
	"Benue": {
		"Makurdi: Makurdi Center",
	},
	"Borno": {
		"Maiduguri: Maiduguri Center",
	},
	"Cross River": {
		"Calabar: Calabar Center",
	},
	"Delta": {
		"Asaba: Asaba Center",
	},
	"Ebonyi": {
		"Abakaliki: 1A, Ogoja Road (Beside Ecobank)",
	},
	"Edo": {
		"Benin City: 42, Benin/Agbor Road, Oregbeni, Ramat Park",
		"Uselu: Uselu Center",
	},
	"Ekiti": {
		"Ado Ekiti: Soladola petrol station, beside APC Secretariat, opposite Moferere junction",
	},
	"Enugu": {
		"Enugu: Enugu Center",
		"Ogui: Ogui Center",
	},
	"FCT - Abuja": {
		"Garki: Shop C11, Efab Plaza, Beside Ibrahim Coomasie Cantonment, Area 11",
		"Gwarimpa: House 38, 3rd Avenue Gwarimpa, Opposite Union Bank",
		"Gwagwalada: Ajibade Plaza, Shop 10, Plot 48, Along Park Road",
		"Kubwa: Block 43, Gado Nasko way, Opposite 2/2 Court",
		"Maraba: 132, Giga Plaza, via Nyanya, Opposite Chrisgold Plaza",
		"Madalla: Near Mobil Filling Station, Along Kaduna Express Road",
		"Utako: Plot 113, I.V.W Osisiogu street, beside Utako Police Station",
		"Wuse 2: Plot 80 Aminu Kano Crescent, Opposite Shariff Plaza",
		"Zuba: 206, Zuba Market, Opposite Lagos Line",
	},
	"Gombe": {
		"Gombe: Gombe Center",
	},
	"Imo": {
		"Owerri: Plot C31, Relief Road, by Relief Junction, Off Egbu Road",
	},
	"Jigawa": {
		"Dutse: Dutse Center",
	},
	"Kaduna": {
		"Kaduna 1: 8 Ahmadu Bello Way, Off Katsina Roundabout, City Plaza",
		"Kaduna 2: Lagos Garage by Airforce Mami Mando",
		"Kaduna 3: Nnamdi Azikiwe Expressway by Command Junction",
		"Zaria: Zaria Center",
	},
	"Kano": {
		"Kano: No 1 Bompai Road by Tarawa Balewa Way, Opposite Grand Central Hotel",
	},
	"Katsina": {
		"Katsina: Katsina Center",
	},
	"Kebbi": {
		"Birnin Kebbi: Birnin Kebbi Center",
	},
	"Kogi": {
		"Lokoja: Lokoja Center",
	},
	"Kwara": {
		"Ilorin 1: 190, Ibrahim Taiwo Road, Adjacent Chicken Republic/UBA",
		"Ilorin 2: No 1 Umar Audi road, Fate Road, Tanke GRA",
	},
	"Lagos": {
		"Gbagada (Head Office): No 1 Sunday Ogunyade Street, Gbagada Expressway",
		"Alaba International: Cs1 Ground Floor Corner Stone Plaza, By Dobbil Avenue",
		"Ajah 1: KM 25, Lekki-Epe Expressway, Ajiwe-Ajah",
		"Ajah 2: KM 22, Lekki-Epe Expressway, Opposite Jeffrey's Plaza",
		"Addo Badore: Tripple Ace Dew Building, Opposite Enyo filling Station",
		"Akowonjo: 41 Shasha Road, Akowonjo Junction, Dopemu",
		"Awoyaya: Km 36, Lekki-Epe Expressway, by Ogunfayo Bus Stop",
		"Amuwo-Odofin: Shop A105 Cosjane Mall, Opposite Diamond Estate",
		"Cele Okota: 103, Okota Road, Cele",
		"Festac: 1st Avenue Road, Festac first gate, beside Inec office",
		"Ikeja 1: 9, Medical Road, former Simbiat Abiola Way",
		"Ikeja 2: 80, Awolowo Way, Ikeja",
		"Ikoyi: 103 Awolowo road, Ikoyi",
		"Ikosi: 16 Ikosi Road, Ketu",
		"Ikorodu: Sabo Road Garage, Ikorodu",
		"Fadeyi: 69, Ikorodu Road, Fadeyi",
		"Ikotun: 29, Idimu Road, Opposite Local Government Council",
		"Ilupeju: Flat 1, Block 1, LSDPC Estate Beside UBA, 12, Industrial Avenue",
		"International Trade Fair: Shop D77 & D78, Abia Plaza, BBA",
		"Ipaja: 164, Lagos Abeokuta Express Way, beside Diamond Bank",
		"Jibowu: 20 Ikorodu Express Road, Jibowu",
		"Lekki Admiralty 1: No 1A, Wole Ariyo Street, Beside First Bank",
		"Lekki Admiralty 2: Jubilee Mall, Admiralty Way, Lekki Phase One",
		"Victoria Island: Victoria Island Center",
		"Old Ojo Road: Old Ojo Road Center",
	},
	"Nasarawa": {
		"Lafia: Lafia Center",
	},
	"Niger": {
		"Minna: Minna Center",
	},
	"Ogun": {
		"Abeokuta: 62, Tinubu Street, Ita Eko",
		"Sango Otta: 3, Abeokuta - Lagos Expressway, Sango Ota",
	},
	"Ondo": {
		"Akure: No 22 Oyemekun Road by Cathedral Junction",
		"Idanre: Idanre Center",
	},
	"Osun": {
		"Osogbo: Ogo Oluwa Bus Stop, Gbangan / Ibadan Road",
	},
	"Oyo": {
		"Ibadan 1: Town Planning Complex, by Sumal Foods, Ring Road",
		"Ogbomosho: Ogbomosho Center",
		"Iwo Road: Iwo Road, Ibadan",
	},
	"Plateau": {
		"Jos: Jos Center",
		"Bingham University Teaching Hospital: Bingham University Teaching Hospital",
	},
	"Rivers": {
		"Port Harcourt 1 (GRA): No 118 Woji Road, Same Building with Yogo Berry Ice Cream",
		"Port Harcourt 2: No 9 Stadium Road, Beside Benjack",
		"PHC Alakahia: PHC Alakahia Center",
		"Benjack: Benjack Center",
		"Choba: Choba Center",
	},
	"Sokoto": {
		"Sokoto: Sokoto Center",
	},
	"Taraba": {
		"Jalingo: Jalingo Center",
	},
	"Yobe": {
		"Damaturu: Damaturu Center",
	},
	"Zamfara": {
		"Zamfara: Zamfara Center",
	},
}

// PickupCenters returns the terminals for region, if any.
func PickupCenters(region string) []string {
	return append([]string(nil), pickupCenters[region]...)
}

func isPickupCenter(region, address string) bool {
	for _, c := range pickupCenters[region] {
		if c == address {
			return true
		}
	}
	return false
}
