package repository

import (
	"ParkSpot-App/internal/domain/model"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

// sampleParkingSpots マニラ首都圏のサンプル駐車場スポット
// プロセス起動時にインメモリリポジトリへ投入される（IDはリポジトリが採番）
func sampleParkingSpots() []model.ParkingSpot {
	return []model.ParkingSpot{
		{
			Name: "SM Mall Parking", Address: "123 Ayala Avenue, Makati City",
			Latitude: 14.5547, Longitude: 121.0244,
			TotalSpots: 100, AvailableSpots: 45,
			PricePerHour: floatPtr(50), Currency: "₱",
			IsOpen24Hours:    true,
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Glorietta Parking", Address: "Glorietta Mall, Makati City",
			Latitude: 14.5513, Longitude: 121.0227,
			TotalSpots: 80, AvailableSpots: 28,
			PricePerHour: floatPtr(60), Currency: "₱",
			OpeningTime: strPtr("6 AM"), ClosingTime: strPtr("10 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true,
		},
		{
			Name: "BGC Street Parking", Address: "32nd Street, Bonifacio Global City",
			Latitude: 14.5509, Longitude: 121.0513,
			TotalSpots: 40, AvailableSpots: 0,
			PricePerHour: floatPtr(40), Currency: "₱",
			IsOpen24Hours:  true,
			HasCardPayment: true,
		},
		{
			Name: "Robinsons Parking", Address: "Robinsons Place, Ermita, Manila",
			Latitude: 14.5776, Longitude: 120.9830,
			TotalSpots: 60, AvailableSpots: 12,
			PricePerHour: floatPtr(45), Currency: "₱",
			OpeningTime: strPtr("10 AM"), ClosingTime: strPtr("9 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true,
		},
		{
			Name: "Greenbelt Parking", Address: "Greenbelt Mall, Makati City",
			Latitude: 14.5504, Longitude: 121.0190,
			TotalSpots: 120, AvailableSpots: 5,
			PricePerHour: floatPtr(70), Currency: "₱",
			OpeningTime: strPtr("9 AM"), ClosingTime: strPtr("11 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "SM City BF Parañaque Parking", Address: "Dr. A. Santos Ave., BF Homes, Parañaque City",
			Latitude: 14.4776, Longitude: 121.0170,
			TotalSpots: 150, AvailableSpots: 72,
			PricePerHour: floatPtr(45), Currency: "₱",
			OpeningTime: strPtr("10 AM"), ClosingTime: strPtr("10 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Parañaque Integrated Terminal Exchange (PITX)", Address: "Coastal Road, Parañaque City",
			Latitude: 14.4893, Longitude: 120.9909,
			TotalSpots: 200, AvailableSpots: 120,
			PricePerHour: floatPtr(50), Currency: "₱",
			IsOpen24Hours:    true,
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Ayala Malls Manila Bay Parking", Address: "Diosdado Macapagal Blvd, Parañaque City",
			Latitude: 14.5072, Longitude: 120.9823,
			TotalSpots: 250, AvailableSpots: 85,
			PricePerHour: floatPtr(60), Currency: "₱",
			OpeningTime: strPtr("10 AM"), ClosingTime: strPtr("10 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Solaire Resort & Casino Parking", Address: "1 Asean Avenue, Entertainment City, Parañaque City",
			Latitude: 14.5125, Longitude: 120.9799,
			TotalSpots: 300, AvailableSpots: 150,
			PricePerHour: floatPtr(100), Currency: "₱",
			IsOpen24Hours:    true,
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Okada Manila Parking", Address: "New Seaside Drive, Entertainment City, Parañaque City",
			Latitude: 14.5012, Longitude: 120.9789,
			TotalSpots: 400, AvailableSpots: 230,
			PricePerHour: floatPtr(100), Currency: "₱",
			IsOpen24Hours:    true,
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Gateway Mall Parking", Address: "Gateway Mall, Araneta City, Quezon City",
			Latitude: 14.6196, Longitude: 121.0531,
			TotalSpots: 75, AvailableSpots: 22,
			PricePerHour: floatPtr(55), Currency: "₱",
			OpeningTime: strPtr("9 AM"), ClosingTime: strPtr("10 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true,
		},
		{
			Name: "Mall of Asia Parking", Address: "SM Mall of Asia, Pasay City",
			Latitude: 14.5355, Longitude: 120.9805,
			TotalSpots: 200, AvailableSpots: 87,
			PricePerHour: floatPtr(65), Currency: "₱",
			OpeningTime: strPtr("7 AM"), ClosingTime: strPtr("12 AM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Intramuros Parking", Address: "Intramuros, Manila",
			Latitude: 14.5893, Longitude: 120.9741,
			TotalSpots: 30, AvailableSpots: 8,
			PricePerHour: floatPtr(35), Currency: "₱",
			OpeningTime: strPtr("8 AM"), ClosingTime: strPtr("8 PM"),
		},
		{
			Name: "Ayala Malls Parking", Address: "Ayala Malls Manila Bay, Parañaque City",
			Latitude: 14.5206, Longitude: 120.9953,
			TotalSpots: 180, AvailableSpots: 60,
			PricePerHour: floatPtr(60), Currency: "₱",
			OpeningTime: strPtr("7 AM"), ClosingTime: strPtr("11 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Megamall Parking", Address: "SM Megamall, Ortigas Center, Mandaluyong",
			Latitude: 14.5847, Longitude: 121.0566,
			TotalSpots: 220, AvailableSpots: 32,
			PricePerHour: floatPtr(55), Currency: "₱",
			OpeningTime: strPtr("7 AM"), ClosingTime: strPtr("10 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "Eastwood City Parking", Address: "Eastwood City, Quezon City",
			Latitude: 14.6083, Longitude: 121.0806,
			TotalSpots: 120, AvailableSpots: 28,
			PricePerHour: floatPtr(50), Currency: "₱",
			IsOpen24Hours:    true,
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
		{
			Name: "South Mall Parking", Address: "Festival Mall, Alabang, Muntinlupa",
			Latitude: 14.4198, Longitude: 121.0406,
			TotalSpots: 90, AvailableSpots: 43,
			PricePerHour: floatPtr(45), Currency: "₱",
			OpeningTime: strPtr("8 AM"), ClosingTime: strPtr("9 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true,
		},
		{
			Name: "North EDSA Parking", Address: "SM North EDSA, Quezon City",
			Latitude: 14.6561, Longitude: 121.0311,
			TotalSpots: 150, AvailableSpots: 76,
			PricePerHour: floatPtr(50), Currency: "₱",
			OpeningTime: strPtr("6 AM"), ClosingTime: strPtr("11 PM"),
			HasSecurityGuard: true, HasCardPayment: true, HasAccessibleParking: true, HasEvCharging: true,
		},
	}
}
