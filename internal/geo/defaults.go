package geo

// DefaultGlobal returns the built-in worldwide network
func DefaultGlobal() *Dataset {
	return NewDataset("global", []Location{
		{Name: "Phoenix HQ", Country: "United States", Region: "Arizona", Lat: 33.4484, Lng: -112.0740, Category: CategoryHeadquarters,
			Stats: map[string]string{"employees": "420", "revenue": "$48.2M", "growth": "+12%"}},
		{Name: "Toronto", Country: "Canada", Region: "Ontario", Lat: 43.6532, Lng: -79.3832, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "18", "revenue": "$6.1M", "growth": "+8%"}},
		{Name: "Mexico City", Country: "Mexico", Lat: 19.4326, Lng: -99.1332, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "11", "revenue": "$3.9M", "growth": "+15%"}},
		{Name: "Sao Paulo", Country: "Brazil", Lat: -23.5505, Lng: -46.6333, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "9", "revenue": "$2.7M", "growth": "+21%"}},
		{Name: "London", Country: "United Kingdom", Lat: 51.5074, Lng: -0.1278, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "23", "revenue": "$7.4M", "growth": "+5%"}},
		{Name: "Berlin", Country: "Germany", Lat: 52.5200, Lng: 13.4050, Category: CategoryRetail,
			Stats: map[string]string{"stores": "4", "revenue": "$1.2M", "growth": "+3%"}},
		{Name: "Dubai", Country: "United Arab Emirates", Lat: 25.2048, Lng: 55.2708, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "6", "revenue": "$2.2M", "growth": "+30%"}},
		{Name: "Singapore", Country: "Singapore", Lat: 1.3521, Lng: 103.8198, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "14", "revenue": "$4.8M", "growth": "+17%"}},
		{Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lng: 139.6503, Category: CategoryRetail,
			Stats: map[string]string{"stores": "7", "revenue": "$3.3M", "growth": "+9%"}},
		{Name: "Sydney", Country: "Australia", Region: "New South Wales", Lat: -33.8688, Lng: 151.2093, Category: CategoryRetail,
			Stats: map[string]string{"stores": "3", "revenue": "$0.9M", "growth": "+11%"}},
		{Name: "Johannesburg", Country: "South Africa", Lat: -26.2041, Lng: 28.0473, Category: CategoryRetail,
			Stats: map[string]string{"stores": "2", "revenue": "$0.4M", "growth": "+19%"}},
	})
}

// DefaultRegional returns the built-in southwestern United States network
func DefaultRegional() *Dataset {
	return NewDataset("regional", []Location{
		{Name: "Phoenix HQ", Country: "United States", Region: "Arizona", Lat: 33.4484, Lng: -112.0740, Category: CategoryHeadquarters,
			Stats: map[string]string{"employees": "420", "revenue": "$48.2M", "growth": "+12%"}},
		{Name: "Tucson", Country: "United States", Region: "Arizona", Lat: 32.2226, Lng: -110.9747, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "5", "revenue": "$2.1M", "growth": "+7%"}},
		{Name: "Flagstaff", Country: "United States", Region: "Arizona", Lat: 35.1983, Lng: -111.6513, Category: CategoryRetail,
			Stats: map[string]string{"stores": "2", "revenue": "$0.6M", "growth": "+4%"}},
		{Name: "Las Vegas", Country: "United States", Region: "Nevada", Lat: 36.1699, Lng: -115.1398, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "8", "revenue": "$3.4M", "growth": "+14%"}},
		{Name: "Albuquerque", Country: "United States", Region: "New Mexico", Lat: 35.0844, Lng: -106.6504, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "4", "revenue": "$1.8M", "growth": "+6%"}},
		{Name: "San Diego", Country: "United States", Region: "California", Lat: 32.7157, Lng: -117.1611, Category: CategoryRetail,
			Stats: map[string]string{"stores": "6", "revenue": "$2.5M", "growth": "+10%"}},
		{Name: "Los Angeles", Country: "United States", Region: "California", Lat: 34.0522, Lng: -118.2437, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "16", "revenue": "$7.9M", "growth": "+9%"}},
		{Name: "Salt Lake City", Country: "United States", Region: "Utah", Lat: 40.7608, Lng: -111.8910, Category: CategoryRetail,
			Stats: map[string]string{"stores": "3", "revenue": "$1.1M", "growth": "+13%"}},
		{Name: "Denver", Country: "United States", Region: "Colorado", Lat: 39.7392, Lng: -104.9903, Category: CategoryDistributor,
			Stats: map[string]string{"partners": "7", "revenue": "$2.9M", "growth": "+11%"}},
		{Name: "El Paso", Country: "United States", Region: "Texas", Lat: 31.7619, Lng: -106.4850, Category: CategoryRetail,
			Stats: map[string]string{"stores": "2", "revenue": "$0.5M", "growth": "+2%"}},
	})
}
