package model

// City is an entry in the Turkish city list.
type City struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WorldCity is an entry in the world city list.
type WorldCity struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TurkishCities lists the 30 largest Turkish cities with Diyanet-compatible
// coordinates.
var TurkishCities = []City{
	{Name: "İstanbul", Latitude: 41.0082, Longitude: 28.9784},
	{Name: "Ankara", Latitude: 39.9334, Longitude: 32.8597},
	{Name: "İzmir", Latitude: 38.4237, Longitude: 27.1428},
	{Name: "Bursa", Latitude: 40.1885, Longitude: 29.0610},
	{Name: "Antalya", Latitude: 36.8969, Longitude: 30.7133},
	{Name: "Adana", Latitude: 37.0000, Longitude: 35.3213},
	{Name: "Konya", Latitude: 37.8746, Longitude: 32.4932},
	{Name: "Gaziantep", Latitude: 37.0662, Longitude: 37.3833},
	{Name: "Şanlıurfa", Latitude: 37.1591, Longitude: 38.7969},
	{Name: "Kocaeli", Latitude: 40.8533, Longitude: 29.8815},
	{Name: "Mersin", Latitude: 36.8121, Longitude: 34.6415},
	{Name: "Diyarbakır", Latitude: 37.9144, Longitude: 40.2306},
	{Name: "Hatay", Latitude: 36.2028, Longitude: 36.1600},
	{Name: "Manisa", Latitude: 38.6191, Longitude: 27.4289},
	{Name: "Kayseri", Latitude: 38.7312, Longitude: 35.4787},
	{Name: "Samsun", Latitude: 41.2928, Longitude: 36.3313},
	{Name: "Balıkesir", Latitude: 39.6484, Longitude: 27.8826},
	{Name: "Kahramanmaraş", Latitude: 37.5858, Longitude: 36.9371},
	{Name: "Van", Latitude: 38.4891, Longitude: 43.4089},
	{Name: "Aydın", Latitude: 37.8560, Longitude: 27.8416},
	{Name: "Denizli", Latitude: 37.7765, Longitude: 29.0864},
	{Name: "Tekirdağ", Latitude: 40.9781, Longitude: 27.5117},
	{Name: "Sakarya", Latitude: 40.6940, Longitude: 30.4358},
	{Name: "Muğla", Latitude: 37.2153, Longitude: 28.3636},
	{Name: "Eskişehir", Latitude: 39.7767, Longitude: 30.5206},
	{Name: "Mardin", Latitude: 37.3212, Longitude: 40.7245},
	{Name: "Trabzon", Latitude: 41.0027, Longitude: 39.7168},
	{Name: "Erzurum", Latitude: 39.9055, Longitude: 41.2658},
	{Name: "Malatya", Latitude: 38.3552, Longitude: 38.3095},
	{Name: "Ordu", Latitude: 40.9862, Longitude: 37.8797},
}

// WorldCities lists 20 major cities commonly picked in the app.
var WorldCities = []WorldCity{
	{Name: "Mecca", Country: "Saudi Arabia", Latitude: 21.4225, Longitude: 39.8262},
	{Name: "Medina", Country: "Saudi Arabia", Latitude: 24.5247, Longitude: 39.5692},
	{Name: "Dubai", Country: "UAE", Latitude: 25.2048, Longitude: 55.2708},
	{Name: "Cairo", Country: "Egypt", Latitude: 30.0444, Longitude: 31.2357},
	{Name: "Jakarta", Country: "Indonesia", Latitude: -6.2088, Longitude: 106.8456},
	{Name: "Kuala Lumpur", Country: "Malaysia", Latitude: 3.1390, Longitude: 101.6869},
	{Name: "London", Country: "UK", Latitude: 51.5074, Longitude: -0.1278},
	{Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522},
	{Name: "Berlin", Country: "Germany", Latitude: 52.5200, Longitude: 13.4050},
	{Name: "New York", Country: "USA", Latitude: 40.7128, Longitude: -74.0060},
	{Name: "Los Angeles", Country: "USA", Latitude: 34.0522, Longitude: -118.2437},
	{Name: "Toronto", Country: "Canada", Latitude: 43.6532, Longitude: -79.3832},
	{Name: "Sydney", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093},
	{Name: "Tokyo", Country: "Japan", Latitude: 35.6762, Longitude: 139.6503},
	{Name: "Islamabad", Country: "Pakistan", Latitude: 33.6844, Longitude: 73.0479},
	{Name: "Karachi", Country: "Pakistan", Latitude: 24.8607, Longitude: 67.0011},
	{Name: "Dhaka", Country: "Bangladesh", Latitude: 23.8103, Longitude: 90.4125},
	{Name: "Riyadh", Country: "Saudi Arabia", Latitude: 24.7136, Longitude: 46.6753},
	{Name: "Baghdad", Country: "Iraq", Latitude: 33.3152, Longitude: 44.3661},
	{Name: "Tehran", Country: "Iran", Latitude: 35.6892, Longitude: 51.3890},
}
