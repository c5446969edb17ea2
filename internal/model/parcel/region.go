package parcel

import "strings"

// Region is a sorting region of Thailand.
type Region string

const (
	RegionNorth     Region = "north"
	RegionNortheast Region = "northeast"
	RegionCentral   Region = "central"
	RegionEast      Region = "east"
	RegionWest      Region = "west"
	RegionSouth     Region = "south"
	RegionUnknown   Region = "unknown"
)

// regionInfo is the Thai label and distribution centre of a region.
type regionInfo struct {
	label  string
	center string
}

var regions = map[Region]regionInfo{
	RegionNorth:     {"ภาคเหนือ", "ศูนย์กระจายสินค้าภาคเหนือ (เชียงใหม่)"},
	RegionNortheast: {"ภาคตะวันออกเฉียงเหนือ", "ศูนย์กระจายสินค้าภาคตะวันออกเฉียงเหนือ (นครราชสีมา)"},
	RegionCentral:   {"ภาคกลาง", "ศูนย์กระจายสินค้าภาคกลาง (กรุงเทพฯ)"},
	RegionEast:      {"ภาคตะวันออก", "ศูนย์กระจายสินค้าภาคตะวันออก (ชลบุรี)"},
	RegionWest:      {"ภาคตะวันตก", "ศูนย์กระจายสินค้าภาคตะวันตก (กาญจนบุรี)"},
	RegionSouth:     {"ภาคใต้", "ศูนย์กระจายสินค้าภาคใต้ (สงขลา)"},
	RegionUnknown:   {"ไม่ระบุภาค", "ศูนย์กระจายสินค้าทั่วไป"},
}

var provincesByRegion = map[Region][]string{
	RegionNorth: {
		"เชียงใหม่", "เชียงราย", "ลำปาง", "ลำพูน", "แม่ฮ่องสอน",
		"น่าน", "พะเยา", "แพร่", "อุตรดิตถ์", "ตาก", "สุโขทัย",
		"พิษณุโลก", "เพชรบูรณ์", "กำแพงเพชร", "นครสวรรค์", "พิจิตร", "อุทัยธานี",
	},
	RegionNortheast: {
		"นครราชสีมา", "ขอนแก่น", "อุดรธานี", "อุบลราชธานี",
		"บุรีรัมย์", "สุรินทร์", "ศรีสะเกษ", "ยโสธร", "ชัยภูมิ",
		"มหาสารคาม", "ร้อยเอ็ด", "กาฬสินธุ์", "สกลนคร", "นครพนม",
		"มุกดาหาร", "เลย", "หนองคาย", "บึงกาฬ", "หนองบัวลำภู", "อำนาจเจริญ",
	},
	RegionCentral: {
		"กรุงเทพมหานคร", "นนทบุรี", "ปทุมธานี", "สมุทรปราการ",
		"นครปฐม", "สมุทรสาคร", "สมุทรสงคราม", "พระนครศรีอยุธยา",
		"อ่างทอง", "สิงห์บุรี", "ชัยนาท", "ลพบุรี", "สระบุรี",
	},
	RegionEast: {
		"ชลบุรี", "ระยอง", "จันทบุรี", "ตราด", "ฉะเชิงเทรา",
		"ปราจีนบุรี", "นครนายก", "สระแก้ว",
	},
	RegionWest: {
		"กาญจนบุรี", "ราชบุรี", "สุพรรณบุรี", "เพชรบุรี", "ประจวบคีรีขันธ์",
	},
	RegionSouth: {
		"สงขลา", "ภูเก็ต", "สุราษฎร์ธานี", "นครศรีธรรมราช", "ตรัง",
		"พัทลุง", "ปัตตานี", "ยะลา", "นราธิวาส", "กระบี่", "พังงา",
		"ระนอง", "ชุมพร", "สตูล",
	},
}

var regionByProvince = func() map[string]Region {
	m := make(map[string]Region)
	for region, provinces := range provincesByRegion {
		for _, p := range provinces {
			m[p] = region
		}
	}
	return m
}()

// provinceAliases maps common short forms to the canonical province name.
var provinceAliases = map[string]string{
	"กรุงเทพ":   "กรุงเทพมหานคร",
	"กรุงเทพฯ": "กรุงเทพมหานคร",
	"กทม":          "กรุงเทพมหานคร",
	"กทม.":        "กรุงเทพมหานคร",
	"อยุธยา":     "พระนครศรีอยุธยา",
}

// NormalizeProvince strips the "จ." and "จังหวัด" prefixes and inner spaces.
func NormalizeProvince(province string) string {
	p := strings.TrimSpace(province)
	p = strings.TrimPrefix(p, "จังหวัด")
	p = strings.TrimPrefix(p, "จ.")
	p = strings.ReplaceAll(p, " ", "")

	if canonical, ok := provinceAliases[p]; ok {
		return canonical
	}
	return p
}

// RegionOf returns the sorting region of a province, RegionUnknown when it is not listed.
func RegionOf(province string) Region {
	if region, ok := regionByProvince[NormalizeProvince(province)]; ok {
		return region
	}
	return RegionUnknown
}

// Label is the Thai region name.
func (r Region) Label() string {
	return regions[r].label
}

// DistributionCenter is the hub parcels for r are routed to.
func (r Region) DistributionCenter() string {
	if info, ok := regions[r]; ok {
		return info.center
	}
	return regions[RegionUnknown].center
}
