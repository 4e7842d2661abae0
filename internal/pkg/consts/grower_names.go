package consts

// GrowerNames 注册时未填写昵称则随机选取
var GrowerNames = []string{
	"Green Thumb", "Garden Guru", "Plant Parent", "Botanical Boss", "Harvest Hero",
	"Flower Fanatic", "The Plant Professor", "Nature Ninja", "Seed Sower", "Leaf Lover",
	"Plant Whisperer", "The Garden Sage", "Farm Fresh", "Bloom Buddy", "Sprout Supreme",
	"Botany Buff", "The Garden Gnome", "Root Ruler", "Hydroponic Hero", "The Plant Doctor",
	"Cultivate King", "Vegetable Veteran", "Agriculture Ace", "Gardening Guru", "The Plant Queen",
	"Succulent Savior", "Compost King", "Green Goddess", "Garden Guardian", "Herb Hunter",
	"Orchid Obsessed", "Crop Commander", "Indoor Gardener", "The Garden Fairy", "Foliage Fan",
	"Plant Protector", "Lawn Legend", "Flower Farmer", "The Plant Enthusiast", "Organic Overlord",
	"Horticulture Hero", "Terrarium Tamer", "Bonsai Boss", "The Garden Wizard", "Agro Ace",
	"Greenhouse Genius", "The Plant Addict", "Perennial Pro", "Urban Farmer",
}
