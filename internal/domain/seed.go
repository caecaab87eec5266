package domain

// SeedProducts стартовый каталог. Хранилище записывает его в файл при первом
// запуске, если файла ещё нет; дальше данные живут только в файле.
func SeedProducts() []Product {
	return []Product{
		{
			ID:       1,
			Name:     "Tissu Bazin Riche Premium",
			Category: CategoryFabric,
			Price:    7500,
			OldPrice: 10500,
			Images: []string{
				"/images/Image3.jpeg",
				"/images/Image2.jpeg",
				"/images/Image1.jpeg",
			},
			IsNew:         true,
			PublishedDate: "2025-11-25",
			Description:   "Bazin riche de qualité supérieure, parfait pour vos tenues traditionnelles",
		},
		{
			ID:       2,
			Name:     "Tissu 3 Pièces Classique",
			Category: CategorySuit,
			Price:    7500,
			OldPrice: 10500,
			Images: []string{
				"/images/Image1.jpeg",
				"/images/Image2.jpeg",
				"/images/Image3.jpeg",
			},
			IsNew:         true,
			PublishedDate: "2025-11-24",
			Description:   "Tissu élégant en laine, coupe moderne",
		},
		{
			ID:       3,
			Name:     "Tissu Oxford Bleu Marine",
			Category: CategoryShirt,
			Price:    8500,
			Images: []string{
				"/images/Image4.jpeg",
				"/images/Image5.jpeg",
				"/images/Image6.jpeg",
			},
			IsNew:         false,
			PublishedDate: "2025-11-20",
			Description:   "Tissu en coton oxford, coupe ajustée",
		},
		{
			ID:       4,
			Name:     "Tissu Qualité Premium",
			Category: CategoryFabric,
			Price:    9500,
			OldPrice: 35000,
			Images: []string{
				"/images/Image7.jpeg",
				"/images/Image8.jpeg",
				"/images/Image9.jpeg",
			},
			IsNew:         true,
			PublishedDate: "2025-11-26",
			Description:   "Tissu de qualité supérieure, parfait pour les vêtements de qualité",
		},
		{
			ID:       5,
			Name:     "Tissu Chino Beige",
			Category: CategoryFabric,
			Price:    6500,
			Images: []string{
				"/images/Image8.jpeg",
				"/images/Image7.jpeg",
				"/images/Image6.jpeg",
			},
			IsNew:         false,
			PublishedDate: "2025-11-18",
			Description:   "Tissu chino confortable, coupe droite",
		},
		{
			ID:       6,
			Name:     "Tissu coton",
			Category: CategoryFabric,
			Price:    18000,
			OldPrice: 28000,
			Images: []string{
				"/images/Image3.jpeg",
			},
			IsNew:         false,
			PublishedDate: "2025-11-15",
			Description:   "Tissu coton de haute qualité",
		},
		{
			ID:       7,
			Name:     "Tissu de Cérémonie",
			Category: CategoryFabric,
			Price:    10000,
			Images: []string{
				"/images/Image6.jpeg",
			},
			IsNew:         true,
			PublishedDate: "2025-11-27",
			Description:   "Chemise blanche parfaite pour les événements",
		},
		{
			ID:       8,
			Name:     "Tissu bleu marine",
			Category: CategoryFabric,
			Price:    6500,
			OldPrice: 10500,
			Images: []string{
				"/images/Image5.jpeg",
			},
			IsNew:         true,
			PublishedDate: "2025-11-28",
			Description:   "Tissu bleu marine, coupe moderne",
		},
		{
			ID:       9,
			Name:     "Tissu Blanc gris",
			Category: CategoryFabric,
			Price:    6500,
			OldPrice: 75000,
			Images: []string{
				"/images/Image4.jpeg",
				"/images/Image5.jpeg",
				"/images/Image6.jpeg",
			},
			IsNew:         true,
			PublishedDate: "2025-11-26",
			Description:   "Tissu blanc gris, coupe moderne",
		},
	}
}

// SeedTestimonials отзывы для главной страницы
func SeedTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:      1,
			Name:    "Mamadou Diallo",
			Role:    "Chef d'entreprise",
			Content: "Excellente qualité de tissus ! J'ai acheté du bazin riche pour mon mariage et le résultat était parfait. Service client très professionnel.",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
			Date:    "Il y a 2 semaines",
		},
		{
			ID:      2,
			Name:    "Fatou Sow",
			Role:    "Styliste",
			Content: "Je recommande vivement GOLFA COUTURE ! Les tissus sont de très haute qualité et les prix sont compétitifs. Mon fournisseur préféré.",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
			Date:    "Il y a 1 mois",
		},
		{
			ID:      3,
			Name:    "Ibrahima Sarr",
			Role:    "Architecte",
			Content: "Le costume que j'ai commandé est parfait ! Coupe impeccable, tissu de qualité. Je suis très satisfait de mon achat.",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
			Date:    "Il y a 3 semaines",
		},
		{
			ID:      4,
			Name:    "Aminata Ba",
			Role:    "Couturière",
			Content: "Très bon rapport qualité-prix. Les nouveaux arrivages sont toujours de qualité et la livraison est rapide. Merci GOLFA COUTURE !",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=100&h=100&fit=crop",
			Date:    "Il y a 1 semaine",
		},
		{
			ID:      5,
			Name:    "Ousmane Ndiaye",
			Role:    "Commerçant",
			Content: "Depuis que je commande chez GOLFA COUTURE, mes clients sont ravis. Qualité constante et excellent service.",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop",
			Date:    "Il y a 2 mois",
		},
		{
			ID:      6,
			Name:    "Aïssatou Diop",
			Role:    "Cliente régulière",
			Content: "J'adore la variété de tissus proposés. On trouve toujours ce qu'on cherche. Prix abordables et qualité au rendez-vous !",
			Rating:  5,
			Image:   "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=100&h=100&fit=crop",
			Date:    "Il y a 3 jours",
		},
	}
}
