// Package icon maps the emojis the Ábaco Finance API uses for categories
// onto Material Design Icon names, plus the type-based icons for net worth
// items.
package icon

// Default is used when an emoji has no mapping.
const Default = "mdi:package-variant-closed"

// Group selects one of the emoji tables.
type Group string

const (
	GroupPatrimony   Group = "patrimony"
	GroupInvestment  Group = "investment"
	GroupAccount     Group = "account"
	GroupCard        Group = "card"
	GroupTransaction Group = "transaction"
)

var patrimonyIcons = map[string]string{
	"🏠":  "mdi:home",
	"🏢":  "mdi:office-building",
	"🏘️": "mdi:home-group",
	"🏰":  "mdi:castle",
	"🏞️": "mdi:image-filter-hdr",
	"🏭":  "mdi:factory",
	"🚗":  "mdi:car",
	"🏍️": "mdi:motorbike",
	"🚚":  "mdi:truck",
	"🚐":  "mdi:van-utility",
	"🚌":  "mdi:bus",
	"⛵":  "mdi:sail-boat",
	"🛥️": "mdi:ferry",
	"✈️": "mdi:airplane",
	"🚁":  "mdi:helicopter",
	"🚲":  "mdi:bike",
	"💻":  "mdi:laptop",
	"📱":  "mdi:cellphone",
	"📷":  "mdi:camera",
	"⌚":  "mdi:watch",
	"📺":  "mdi:television",
	"🖥️": "mdi:monitor",
	"💎":  "mdi:diamond-stone",
	"💍":  "mdi:ring",
	"👑":  "mdi:crown",
	"💠":  "mdi:diamond",
	"🎨":  "mdi:palette",
	"🖼️": "mdi:image-frame",
	"🏆":  "mdi:trophy",
	"🏅":  "mdi:medal",
	"📦":  "mdi:package-variant-closed",
	"💼":  "mdi:briefcase",
	"🛠️": "mdi:tools",
	"🪑":  "mdi:chair-rolling",
	"🌱":  "mdi:sprout",
	"🐕":  "mdi:dog",
}

var investmentIcons = map[string]string{
	"📈": "mdi:chart-line",
	"🏢": "mdi:office-building",
	"₿": "mdi:currency-btc",
	"🧾": "mdi:receipt-text",
	"💼": "mdi:briefcase",
	"🤝": "mdi:handshake",
	"🥇": "mdi:medal",
	"🐷": "mdi:piggy-bank",
	"📜": "mdi:file-document",
	"📊": "mdi:chart-bar",
}

var accountIcons = map[string]string{
	"💳": "mdi:credit-card",
	"🐷": "mdi:piggy-bank",
	"📊": "mdi:chart-line",
	"👛": "mdi:wallet",
	"📱": "mdi:cellphone",
}

var cardIcons = map[string]string{
	"✅": "mdi:check-circle",
	"❌": "mdi:close-circle",
	"💳": "mdi:credit-card",
	"🔴": "mdi:circle",
	"🔵": "mdi:circle",
	"🔷": "mdi:rhombus",
	"🟡": "mdi:circle",
}

var transactionIcons = map[string]string{
	"🍔":  "mdi:hamburger",
	"🍽️": "mdi:silverware-fork-knife",
	"🛒":  "mdi:cart",
	"☕":  "mdi:coffee",
	"🍕":  "mdi:pizza",
	"🚗":  "mdi:car",
	"⛽":  "mdi:gas-station",
	"🅿️": "mdi:parking",
	"🚕":  "mdi:taxi",
	"🚇":  "mdi:subway-variant",
	"🏠":  "mdi:home",
	"🏘️": "mdi:home-group",
	"💡":  "mdi:lightbulb",
	"💧":  "mdi:water",
	"📡":  "mdi:wifi",
	"📞":  "mdi:phone",
	"🏥":  "mdi:hospital-building",
	"💊":  "mdi:pill",
	"💪":  "mdi:dumbbell",
	"📚":  "mdi:book-open-page-variant",
	"🎓":  "mdi:school",
	"📖":  "mdi:book-open",
	"🎬":  "mdi:movie-open",
	"🎥":  "mdi:movie",
	"🎵":  "mdi:music",
	"🎮":  "mdi:gamepad-variant",
	"✈️": "mdi:airplane",
	"🏨":  "mdi:hotel",
	"🛍️": "mdi:shopping",
	"👔":  "mdi:tshirt-crew",
	"👟":  "mdi:shoe-sneaker",
	"📱":  "mdi:cellphone",
	"🏦":  "mdi:bank",
	"📈":  "mdi:chart-line",
	"💰":  "mdi:currency-usd",
	"💳":  "mdi:credit-card",
	"💵":  "mdi:cash",
	"🎁":  "mdi:gift",
	"💼":  "mdi:briefcase",
	"❤️": "mdi:heart",
	"🐾":  "mdi:paw",
	"💄":  "mdi:lipstick",
	"📦":  "mdi:package-variant-closed",
}

var groups = map[Group]map[string]string{
	GroupPatrimony:   patrimonyIcons,
	GroupInvestment:  investmentIcons,
	GroupAccount:     accountIcons,
	GroupCard:        cardIcons,
	GroupTransaction: transactionIcons,
}

// FromEmoji returns the MDI icon for an emoji, searching all groups.
// Unknown emojis map to Default.
func FromEmoji(emoji string) string {
	for _, table := range groups {
		if icon, ok := table[emoji]; ok {
			return icon
		}
	}
	return Default
}

// FromEmojiIn looks an emoji up in one group only.
func FromEmojiIn(group Group, emoji string) (string, bool) {
	icon, ok := groups[group][emoji]
	return icon, ok
}

// ForPatrimonyItem chooses an icon from a net worth item's type and
// category fields.
func ForPatrimonyItem(itemType, category string) string {
	icon := "mdi:home"
	if itemType == "vehicle" {
		icon = "mdi:car"
	}
	if itemType == "property" {
		icon = "mdi:home-city"
	}
	if category == "land" {
		icon = "mdi:pine-tree"
	}
	return icon
}
