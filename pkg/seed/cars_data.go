package seed

import "mrgcar/pkg/domain"

// CarRecord is one row of the static listing dataset.
type CarRecord struct {
	Make         string
	Model        string
	Variant      string
	Year         int
	PriceCents   int64
	MileageKM    int
	Fuel         domain.FuelType
	Transmission domain.Transmission
	Color        string
	Description  string
	Specs        map[string]string
}

// Cars is the starter inventory. Each (Make, Model, Variant) triple is
// unique; re-seeding updates prices and descriptions in place.
var Cars = []CarRecord{
	{
		Make: "Toyota", Model: "Corolla", Variant: "1.8 Hybrid", Year: 2021,
		PriceCents: 2189000, MileageKM: 43200, Fuel: domain.FuelHybrid,
		Transmission: domain.TransmissionAutomatic, Color: "white",
		Description: "One owner, full service history, city driven.",
		Specs:       map[string]string{"doors": "5", "powerKW": "90"},
	},
	{
		Make: "Toyota", Model: "Yaris", Variant: "1.5 VVT-i", Year: 2019,
		PriceCents: 1349000, MileageKM: 61000, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionManual, Color: "red",
		Description: "Compact, economical, new tyres fitted this spring.",
		Specs:       map[string]string{"doors": "5", "powerKW": "82"},
	},
	{
		Make: "Volkswagen", Model: "Golf", Variant: "2.0 TDI", Year: 2018,
		PriceCents: 1579000, MileageKM: 98000, Fuel: domain.FuelDiesel,
		Transmission: domain.TransmissionManual, Color: "grey",
		Description: "Highway kilometres, timing belt replaced at 90k.",
		Specs:       map[string]string{"doors": "5", "powerKW": "110"},
	},
	{
		Make: "Volkswagen", Model: "Passat", Variant: "1.4 TSI", Year: 2020,
		PriceCents: 2249000, MileageKM: 54000, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionAutomatic, Color: "black",
		Description: "Estate, tow bar, adaptive cruise control.",
		Specs:       map[string]string{"doors": "5", "powerKW": "110", "body": "estate"},
	},
	{
		Make: "Honda", Model: "Civic", Variant: "1.0 VTEC Turbo", Year: 2019,
		PriceCents: 1699000, MileageKM: 47800, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionManual, Color: "blue",
		Description: "Sport trim, heated seats, dealer maintained.",
		Specs:       map[string]string{"doors": "5", "powerKW": "95"},
	},
	{
		Make: "Honda", Model: "Jazz", Variant: "1.5 e:HEV", Year: 2022,
		PriceCents: 2099000, MileageKM: 18500, Fuel: domain.FuelHybrid,
		Transmission: domain.TransmissionAutomatic, Color: "silver",
		Description: "Nearly new, remaining factory warranty until 2027.",
		Specs:       map[string]string{"doors": "5", "powerKW": "80"},
	},
	{
		Make: "Ford", Model: "Focus", Variant: "1.5 EcoBoost", Year: 2017,
		PriceCents: 1099000, MileageKM: 112000, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionManual, Color: "white",
		Description: "Well kept commuter, two sets of wheels included.",
		Specs:       map[string]string{"doors": "5", "powerKW": "110"},
	},
	{
		Make: "Ford", Model: "Kuga", Variant: "2.5 PHEV", Year: 2021,
		PriceCents: 2890000, MileageKM: 38000, Fuel: domain.FuelHybrid,
		Transmission: domain.TransmissionAutomatic, Color: "grey",
		Description: "Plug-in hybrid SUV, charging cable and winter pack.",
		Specs:       map[string]string{"doors": "5", "powerKW": "165", "body": "suv"},
	},
	{
		Make: "Skoda", Model: "Octavia", Variant: "2.0 TDI Style", Year: 2020,
		PriceCents: 1999000, MileageKM: 76000, Fuel: domain.FuelDiesel,
		Transmission: domain.TransmissionAutomatic, Color: "green",
		Description: "Combi, roof rails, serviced at authorized dealer.",
		Specs:       map[string]string{"doors": "5", "powerKW": "110", "body": "estate"},
	},
	{
		Make: "Skoda", Model: "Fabia", Variant: "1.0 TSI", Year: 2019,
		PriceCents: 1149000, MileageKM: 52300, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionManual, Color: "blue",
		Description: "First car friendly, low insurance group.",
		Specs:       map[string]string{"doors": "5", "powerKW": "70"},
	},
	{
		Make: "BMW", Model: "320d", Variant: "Touring xDrive", Year: 2019,
		PriceCents: 2790000, MileageKM: 89000, Fuel: domain.FuelDiesel,
		Transmission: domain.TransmissionAutomatic, Color: "black",
		Description: "All-wheel drive estate, M Sport package.",
		Specs:       map[string]string{"doors": "5", "powerKW": "140", "drive": "awd"},
	},
	{
		Make: "BMW", Model: "i3", Variant: "120Ah", Year: 2020,
		PriceCents: 2290000, MileageKM: 41000, Fuel: domain.FuelElectric,
		Transmission: domain.TransmissionAutomatic, Color: "white",
		Description: "City EV, heat pump, fast charging.",
		Specs:       map[string]string{"doors": "5", "batteryKWh": "42"},
	},
	{
		Make: "Mercedes-Benz", Model: "C 200", Variant: "EQ Boost", Year: 2019,
		PriceCents: 2990000, MileageKM: 67000, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionAutomatic, Color: "silver",
		Description: "Mild hybrid sedan, AMG line exterior.",
		Specs:       map[string]string{"doors": "4", "powerKW": "135"},
	},
	{
		Make: "Audi", Model: "A4", Variant: "40 TFSI", Year: 2020,
		PriceCents: 2849000, MileageKM: 59000, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionAutomatic, Color: "grey",
		Description: "Virtual cockpit, matrix LED headlights.",
		Specs:       map[string]string{"doors": "4", "powerKW": "140"},
	},
	{
		Make: "Audi", Model: "e-tron", Variant: "55 quattro", Year: 2021,
		PriceCents: 4590000, MileageKM: 33000, Fuel: domain.FuelElectric,
		Transmission: domain.TransmissionAutomatic, Color: "blue",
		Description: "Electric SUV, air suspension, 150 kW charging.",
		Specs:       map[string]string{"doors": "5", "batteryKWh": "95", "drive": "awd"},
	},
	{
		Make: "Hyundai", Model: "Ioniq 5", Variant: "77 kWh AWD", Year: 2022,
		PriceCents: 3990000, MileageKM: 21000, Fuel: domain.FuelElectric,
		Transmission: domain.TransmissionAutomatic, Color: "green",
		Description: "800V architecture, vehicle-to-load adapter.",
		Specs:       map[string]string{"doors": "5", "batteryKWh": "77", "drive": "awd"},
	},
	{
		Make: "Hyundai", Model: "Tucson", Variant: "1.6 T-GDI HEV", Year: 2021,
		PriceCents: 2690000, MileageKM: 44500, Fuel: domain.FuelHybrid,
		Transmission: domain.TransmissionAutomatic, Color: "red",
		Description: "Hybrid SUV, panoramic roof, krell audio.",
		Specs:       map[string]string{"doors": "5", "powerKW": "169", "body": "suv"},
	},
	{
		Make: "Kia", Model: "Ceed", Variant: "1.4 T-GDI", Year: 2019,
		PriceCents: 1399000, MileageKM: 68000, Fuel: domain.FuelPetrol,
		Transmission: domain.TransmissionManual, Color: "black",
		Description: "Remaining 7-year warranty, lane keep assist.",
		Specs:       map[string]string{"doors": "5", "powerKW": "103"},
	},
	{
		Make: "Volvo", Model: "XC60", Variant: "B4 AWD", Year: 2021,
		PriceCents: 3790000, MileageKM: 49000, Fuel: domain.FuelDiesel,
		Transmission: domain.TransmissionAutomatic, Color: "white",
		Description: "Mild hybrid diesel, pilot assist, towbar.",
		Specs:       map[string]string{"doors": "5", "powerKW": "145", "body": "suv"},
	},
	{
		Make: "Tesla", Model: "Model 3", Variant: "Long Range", Year: 2021,
		PriceCents: 3490000, MileageKM: 52000, Fuel: domain.FuelElectric,
		Transmission: domain.TransmissionAutomatic, Color: "red",
		Description: "Dual motor, autopilot, new 19\" tyres.",
		Specs:       map[string]string{"doors": "4", "batteryKWh": "75", "drive": "awd"},
	},
}
