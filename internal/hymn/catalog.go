// Package hymn holds the static hymn catalog and the browser state used to
// read through it verse by verse.
package hymn

// Hymn is a titled hymn with its verses in order.
type Hymn struct {
	Title  string
	Author string
	Verses []string
}

// Catalog returns the built-in hymns. The returned slice is a fresh copy.
func Catalog() []Hymn {
	out := make([]Hymn, len(catalog))
	for i, h := range catalog {
		h.Verses = append([]string(nil), h.Verses...)
		out[i] = h
	}
	return out
}

var catalog = []Hymn{
	{
		Title:  "Amazing Grace",
		Author: "John Newton",
		Verses: []string{
			"Amazing grace! How sweet the sound\nThat saved a wretch like me!\nI once was lost, but now am found;\nWas blind, but now I see.",
			"'Twas grace that taught my heart to fear,\nAnd grace my fears relieved;\nHow precious did that grace appear\nThe hour I first believed.",
			"Through many dangers, toils and snares,\nI have already come;\n'Tis grace hath brought me safe thus far,\nAnd grace will lead me home.",
		},
	},
	{
		Title:  "How Great Thou Art",
		Author: "Carl Boberg",
		Verses: []string{
			"O Lord my God, when I in awesome wonder\nConsider all the worlds Thy hands have made,\nI see the stars, I hear the rolling thunder,\nThy power throughout the universe displayed:",
			"Then sings my soul, my Savior God, to Thee:\nHow great Thou art, how great Thou art!\nThen sings my soul, my Savior God, to Thee:\nHow great Thou art, how great Thou art!",
			"When Christ shall come with shout of acclamation\nAnd take me home, what joy shall fill my heart!\nThen I shall bow in humble adoration\nAnd there proclaim, my God, how great Thou art!",
		},
	},
	{
		Title:  "Holy, Holy, Holy",
		Author: "Reginald Heber",
		Verses: []string{
			"Holy, holy, holy! Lord God Almighty!\nEarly in the morning our song shall rise to Thee;\nHoly, holy, holy, merciful and mighty!\nGod in three Persons, blessed Trinity!",
			"Holy, holy, holy! All the saints adore Thee,\nCasting down their golden crowns around the glassy sea;\nCherubim and seraphim falling down before Thee,\nWhich wert, and art, and evermore shalt be.",
			"Holy, holy, holy! Though the darkness hide Thee,\nThough the eye of sinful man Thy glory may not see;\nOnly Thou art holy; there is none beside Thee,\nPerfect in power, in love, and purity.",
		},
	},
}
