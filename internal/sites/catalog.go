package sites

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Catalog is the fixed set of valid retail site names. It is built once at
// process start and passed by reference to registration and filtering logic.
type Catalog struct {
	names []string
	index map[string]struct{}
}

// New builds a catalog from the given site names, dropping blanks and
// duplicates and keeping the listing sorted.
func New(names []string) *Catalog {
	c := &Catalog{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := c.index[name]; ok {
			continue
		}
		c.index[name] = struct{}{}
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// Default returns the built-in retail site catalog.
func Default() *Catalog {
	return New(defaultSites)
}

// LoadFile reads a catalog from a file with one site name per line.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open site catalog: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read site catalog: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("site catalog %s is empty", path)
	}
	return New(names), nil
}

// Contains reports whether name is a valid site.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns the sorted site names.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of sites in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

var defaultSites = []string{
	"TWT Alberton",
	"TWT Amanzimtoti",
	"TWT Balfour Park",
	"TWT Bedfordview",
	"TWT Bellville",
	"TWT Benoni",
	"TWT Boksburg",
	"TWT Brits",
	"TWT Broadacres",
	"TWT Canal Walk",
	"TWT Cape Gate",
	"TWT Cape Town",
	"TWT Centurion",
	"TWT Centurion Lifestyle",
	"TWT Claremont",
	"TWT Cradlestone",
	"TWT Cresta",
	"TWT Durban",
	"TWT Durbanville",
	"TWT Eastgate",
	"TWT Festival Mall",
	"TWT Fordsburg",
	"TWT Fourways",
	"TWT George",
	"TWT Gezina",
	"TWT Greenstone",
	"TWT Groblersdal",
	"TWT Hammanskraal",
	"TWT Hatfield",
	"TWT Kempton Park",
	"TWT Keywest",
	"TWT Killarney Mall",
	"TWT Klerksdorp",
	"TWT La Lucia",
	"TWT Lephalale",
	"TWT Lynnwood",
	"TWT Mall at Reds",
	"TWT Meadowdale",
	"TWT Melrose",
	"TWT Menlyn",
	"TWT Middelburg",
	"TWT Midrand",
	"TWT Modimolle",
	"TWT Mokopane",
	"TWT Montana",
	"TWT Mosselbay",
	"TWT Mt Edgecombe",
	"TWT Musina",
	"TWT N1 City",
	"TWT Nelspruit CBD",
	"TWT Newmarket",
	"TWT Noordhoek",
	"TWT Paarl",
	"TWT Paarl Mall",
	"TWT Parkdene",
	"TWT Parklands",
	"TWT PE Heugh Road",
	"TWT Pinetown",
	"TWT Polokwane",
	"TWT Port Elizabeth",
	"TWT Potchefstroom",
	"TWT Pretoria CBD",
	"TWT Randburg",
	"TWT Randfontein",
	"TWT Raslouw",
	"TWT Riverside",
	"TWT Rivonia",
	"TWT Rosebank",
	"TWT Rustenburg",
	"TWT Sandhurst",
	"TWT Sandton",
	"TWT Savannah",
	"TWT Silverlakes",
	"TWT Somerset",
	"TWT Springfield",
	"TWT Springs",
	"TWT Stellenbosch",
	"TWT Strijdom Park",
	"TWT Strubens Valley",
	"TWT Sunninghill",
	"TWT Tableview",
	"TWT Tembisa",
	"TWT The Glen",
	"TWT Tokai",
	"TWT Tygervalley",
	"TWT Umhlanga",
	"TWT Vanderbijlpark",
	"TWT Walmer",
	"TWT Westgate",
	"TWT Wonderboom",
	"TWT Wonderpark",
	"TWT Woodlands Mall",
	"TWT Woodmead",
}
