package catalog

var SampleProducts = []Product{
	{ID: 1, Title: "Kaos Retro", PriceRupiah: 119000, Category: "Pakaian", ImageURL: "https://placehold.co/400x300?text=Kaos"},
	{ID: 2, Title: "Headset Gaming", PriceRupiah: 349000, Category: "Elektronik", ImageURL: "https://placehold.co/400x300?text=Headset"},
	{ID: 3, Title: "Sepatu Running", PriceRupiah: 249000, Category: "Sepatu", ImageURL: "https://placehold.co/400x300?text=Sepatu"},
	{ID: 4, Title: "Topi Snapback", PriceRupiah: 89900, Category: "Aksesoris", ImageURL: "https://placehold.co/400x300?text=Topi"},
	{ID: 5, Title: "Powerbank 10.000mAh", PriceRupiah: 129000, Category: "Elektronik", ImageURL: "https://placehold.co/400x300?text=Powerbank"},
}
