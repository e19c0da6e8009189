package catalog

// Seed data mirrors the storefront pages: p01..p12 reserva line, the rosé
// trio and the sparkling trio, plus the published offers and the three
// Santiago locations.

func seedProducts() []Product {
	return []Product{
		{ID: "p01", Name: "Reserva Especial 2016", Category: "tinto", Varietal: "Cabernet Sauvignon", Origin: "Valle del Maipo", Price: 9690, Image: "https://images.pexels.com/photos/2149147/pexels-photo-2149147.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p02", Name: "Reserva Especial 2017", Category: "blanco", Varietal: "Sauvignon Blanc", Origin: "Valle de Casablanca", Price: 10390, Image: "https://images.pexels.com/photos/2149164/pexels-photo-2149164.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p03", Name: "Reserva Especial 2018", Category: "tinto", Varietal: "Cabernet Sauvignon", Origin: "Valle de Colchagua", Price: 11090, Image: "https://images.pexels.com/photos/2149151/pexels-photo-2149151.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p04", Name: "Reserva Especial 2019", Category: "blanco", Varietal: "Sauvignon Blanc", Origin: "Valle de Casablanca", Price: 11790, Image: "https://images.pexels.com/photos/1407850/pexels-photo-1407850.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p05", Name: "Reserva Especial 2020", Category: "tinto", Varietal: "Cabernet Sauvignon", Origin: "Valle del Maipo", Price: 12490, Image: "https://images.pexels.com/photos/2149161/pexels-photo-2149161.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p06", Name: "Reserva Especial 2021", Category: "blanco", Varietal: "Sauvignon Blanc", Origin: "Valle de Leyda", Price: 13190, Image: "https://images.pexels.com/photos/5531554/pexels-photo-5531554.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p07", Name: "Reserva Especial 2022", Category: "tinto", Varietal: "Cabernet Sauvignon", Origin: "Valle del Maipo", Price: 13890, Image: "https://images.pexels.com/photos/2149148/pexels-photo-2149148.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p08", Name: "Reserva Especial 2023", Category: "blanco", Varietal: "Sauvignon Blanc", Origin: "Valle de Casablanca", Price: 14590, Image: "https://images.pexels.com/photos/1407855/pexels-photo-1407855.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p09", Name: "Reserva Especial 2024", Category: "tinto", Varietal: "Cabernet Sauvignon", Origin: "Valle del Maipo", Price: 15290, Image: "https://images.pexels.com/photos/1407857/pexels-photo-1407857.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p10", Name: "Reserva Especial 2025", Category: "blanco", Varietal: "Sauvignon Blanc", Origin: "Valle de Casablanca", Price: 15990, Image: "https://images.pexels.com/photos/2149144/pexels-photo-2149144.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p11", Name: "Reserva Especial 2026", Category: "tinto", Varietal: "Cabernet Sauvignon", Origin: "Valle del Maipo", Price: 16690, Image: "https://images.pexels.com/photos/2149146/pexels-photo-2149146.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "p12", Name: "Reserva Especial 2027", Category: "blanco", Varietal: "Sauvignon Blanc", Origin: "Valle de Casablanca", Price: 17390, Image: "https://images.pexels.com/photos/5946922/pexels-photo-5946922.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "ros-01", Name: "Rosé Costa Fresca", Category: "rosado", Varietal: "Blend rosé", Origin: "Valle de Casablanca", Price: 8990, Image: "https://images.pexels.com/photos/5947020/pexels-photo-5947020.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "ros-02", Name: "Rosé de Syrah", Category: "rosado", Varietal: "Syrah", Origin: "Valle de Colchagua", Price: 9490, Image: "https://images.pexels.com/photos/5947024/pexels-photo-5947024.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "ros-03", Name: "Rosé Tarde de Verano", Category: "rosado", Varietal: "Grenache", Origin: "Valle del Maule", Price: 7990, Image: "https://images.pexels.com/photos/5947026/pexels-photo-5947026.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "esp-01", Name: "Espumante Brut Tradición", Category: "espumante", Varietal: "Blend", Origin: "Valle de Limarí", Price: 10990, Image: "https://images.pexels.com/photos/5947023/pexels-photo-5947023.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "esp-02", Name: "Espumante Rosé", Category: "espumante", Varietal: "Pinot Noir", Origin: "Valle de Casablanca", Price: 11990, Image: "https://images.pexels.com/photos/5947021/pexels-photo-5947021.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "esp-03", Name: "Espumante Brut Nature", Category: "espumante", Varietal: "Chardonnay", Origin: "Valle de Casablanca", Price: 12990, Image: "https://images.pexels.com/photos/5947023/pexels-photo-5947023.jpeg?auto=compress&cs=tinysrgb&w=1200"},
	}
}

func seedOffers() []Offer {
	return []Offer{
		{ID: "of-01", ProductID: "p01", Name: "Pack 3x Cabernet Reserva", Category: "tinto", Price: 19990, Original: 26970, Discount: 26, ClubOnly: false, Image: "https://images.pexels.com/photos/2149149/pexels-photo-2149149.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "of-02", ProductID: "p02", Name: "Caja 6x Sauvignon Blanc Costa", Category: "blanco", Price: 27990, Original: 35940, Discount: 22, ClubOnly: true, Image: "https://images.pexels.com/photos/2903166/pexels-photo-2903166.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "of-03", ProductID: "ros-01", Name: "Dúo Rosé + Espumante", Category: "rosado", Price: 14990, Original: 18980, Discount: 21, ClubOnly: false, Image: "https://images.pexels.com/photos/5947021/pexels-photo-5947021.jpeg?auto=compress&cs=tinysrgb&w=1200"},
		{ID: "of-04", ProductID: "esp-01", Name: "Pack 4x Espumante Brut", Category: "espumante", Price: 25990, Original: 33960, Discount: 24, ClubOnly: true, Image: "https://images.pexels.com/photos/5947023/pexels-photo-5947023.jpeg?auto=compress&cs=tinysrgb&w=1200"},
	}
}

func seedLocations() []Location {
	return []Location{
		{
			ID:       "st-providencia",
			Comuna:   "Providencia",
			Name:     "Viña Urbana Providencia",
			Address:  "Av. Providencia 1234, Providencia, Santiago",
			Schedule: "Lunes a sábado 11:00–21:00",
			Phone:    "+56 2 2222 1111",
			Services: []string{"Sala de degustación", "Retiro de compras online", "Asesoría de sommelier"},
			Image:    "https://images.pexels.com/photos/941864/pexels-photo-941864.jpeg?auto=compress&cs=tinysrgb&w=1200",
			MapsURL:  "https://maps.google.com/?q=Providencia+1234+Santiago",
		},
		{
			ID:       "st-lascondes",
			Comuna:   "Las Condes",
			Name:     "Viña Urbana Las Condes",
			Address:  "Av. Apoquindo 3456, Las Condes, Santiago",
			Schedule: "Lunes a domingo 11:00–22:00",
			Phone:    "+56 2 2333 2222",
			Services: []string{"Eventos privados y catas", "Estacionamiento clientes", "Club pick-up (membresía)"},
			Image:    "https://images.pexels.com/photos/1407858/pexels-photo-1407858.jpeg?auto=compress&cs=tinysrgb&w=1200",
			MapsURL:  "https://maps.google.com/?q=Apoquindo+3456+Santiago",
		},
		{
			ID:       "st-nunoa",
			Comuna:   "Ñuñoa",
			Name:     "Viña Urbana Ñuñoa",
			Address:  "Av. Irarrázaval 789, Ñuñoa, Santiago",
			Schedule: "Martes a domingo 12:00–21:00",
			Phone:    "+56 2 2444 3333",
			Services: []string{"Bar de vinos por copa", "Retiro de pedidos web", "Talleres y charlas (demo)"},
			Image:    "https://images.pexels.com/photos/2147855/pexels-photo-2147855.jpeg?auto=compress&cs=tinysrgb&w=1200",
			MapsURL:  "https://maps.google.com/?q=Irarrázaval+789+Santiago",
		},
	}
}
