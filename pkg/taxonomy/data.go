package taxonomy

// categoryOrder fixes the presentation/iteration order of categories,
// matching the quota table in spec.md §4.7.
var categoryOrder = []string{
	"Arithmetic",
	"Algebra",
	"Geometry and Mensuration",
	"Number System",
	"Modern Math",
}

// subcategoriesByCategory is the closed set of subcategories per
// category. Values supplement spec.md with the full taxonomy content
// (see SPEC_FULL.md §4).
var subcategoriesByCategory = map[string][]string{
	"Arithmetic": {
		"Time-Speed-Distance", "Time-Work", "Ratios and Proportions",
		"Percentages", "Averages and Alligation", "Profit-Loss-Discount",
		"Simple and Compound Interest", "Mixtures and Solutions", "Partnerships",
	},
	"Algebra": {
		"Linear Equations", "Quadratic Equations", "Inequalities", "Progressions",
		"Functions and Graphs", "Logarithms and Exponents", "Special Algebraic Identities",
		"Maxima and Minima", "Special Polynomials",
	},
	"Geometry and Mensuration": {
		"Triangles", "Circles", "Polygons", "Coordinate Geometry",
		"Mensuration 2D", "Mensuration 3D", "Trigonometry",
	},
	"Number System": {
		"Divisibility", "HCF-LCM", "Remainders", "Base Systems",
		"Digit Properties", "Number Properties", "Number Series", "Factorials",
	},
	"Modern Math": {
		"Permutation-Combination", "Probability", "Set Theory and Venn Diagram",
	},
}

// typesBySubcategory is the closed set of type_of_question values per
// subcategory.
var typesBySubcategory = map[string][]string{
	// Arithmetic
	"Time-Speed-Distance":          {"Basics", "Relative Speed", "Circular Track Motion", "Boats and Streams", "Trains", "Races"},
	"Time-Work":                    {"Work Time Effeciency", "Pipes and Cisterns", "Work Equivalence"},
	"Ratios and Proportions":       {"Simple Rations", "Compound Ratios", "Direct and Inverse Variation", "Partnerships"},
	"Percentages":                  {"Basics", "Percentage Change", "Successive Percentage Change"},
	"Averages and Alligation":      {"Basic Averages", "Weighted Averages", "Alligations & Mixtures", "Three Mixture Alligations"},
	"Profit-Loss-Discount":         {"Basics", "Successive Profit/Loss/Discounts", "Marked Price and Cost Price Relations", "Discount Chains"},
	"Simple and Compound Interest": {"Basics", "Difference between Simple Interest and Compound Interests", "Fractional Time Period Compound Interest"},
	"Mixtures and Solutions":       {"Replacements", "Concentration Change", "Solid-Liquid-Gas Mixtures"},
	"Partnerships":                 {"Profit share"},

	// Algebra
	"Linear Equations":              {"Two variable systems", "Three variable systems", "Dependent and Inconsistent Systems"},
	"Quadratic Equations":           {"Roots & Nature of Roots", "Sum and Product of Roots", "Maximum and Minimum Values"},
	"Inequalities":                  {"Linear Inequalities", "Quadratic Inequalities", "Modulus and Absolute Value", "Arithmetic Mean", "Geometric Mean", "Cauchy Schwarz"},
	"Progressions":                  {"Arithmetic Progression", "Geometric Progression", "Harmonic Progression", "Mixed Progressions"},
	"Functions and Graphs":          {"Linear Functions", "Quadratic Functions", "Polynomial Functions", "Modulus Functions", "Step Functions", "Transformations", "Domain Range", "Composition and Inverse Functions"},
	"Logarithms and Exponents":      {"Basics", "Change of Base Formula", "Solving Log Equations", "Surds and Indices"},
	"Special Algebraic Identities":  {"Expansion and Factorisation", "Cubes and Squares", "Binomial Theorem"},
	"Maxima and Minima":             {"Optimisation with Algebraic Expressions"},
	"Special Polynomials":           {"Remainder Theorem", "Factor Theorem"},

	// Geometry and Mensuration
	"Triangles":          {"Properties (Angles, Sides, Medians, Bisectors)", "Congruence & Similarity", "Pythagoras & Converse", "Inradius, Circumradius, Orthocentre"},
	"Circles":            {"Tangents & Chords", "Angles in a Circle", "Cyclic Quadrilaterals"},
	"Polygons":           {"Regular Polygons", "Interior / Exterior Angles"},
	"Coordinate Geometry": {"Distance", "Section Formula", "Midpoint", "Equation of a line", "Slope & Intercepts", "Circles in Coordinate Plane", "Parabola", "Ellipse", "Hyperbola"},
	"Mensuration 2D":     {"Area Triangle", "Area Rectangle", "Area Trapezium", "Area Circle", "Sector"},
	"Mensuration 3D":     {"Volume Cubes", "Volume Cuboid", "Volume Cylinder", "Volume Cone", "Volume Sphere", "Volume Hemisphere", "Surface Areas"},
	"Trigonometry":       {"Heights and Distances", "Basic Trigonometric Ratios"},

	// Number System
	"Divisibility":     {"Basic Divisibility Rules", "Factorisation of Integers"},
	"HCF-LCM":          {"Euclidean Algorithm", "Product of HCF and LCM"},
	"Remainders":       {"Basic Remainder Theorem", "Chinese Remainder Theorem", "Cyclicity of Remainders (Last Digits)", "Cyclicity of Remainders (Last Two Digits)"},
	"Base Systems":     {"Conversion between bases", "Arithmetic in different bases"},
	"Digit Properties": {"Sum of Digits", "Last Digit Patterns", "Palindromes", "Repetitive Digits"},
	"Number Properties": {"Perfect Squares", "Perfect Cubes"},
	"Number Series":    {"Sum of Squares", "Sum of Cubes", "Telescopic Series"},
	"Factorials":       {"Properties of Factorials"},

	// Modern Math
	"Permutation-Combination":     {"Basics", "Circular Permutations", "Permutations with Repetitions", "Permutations with Restrictions", "Combinations with Repetitions", "Combinations with Restrictions"},
	"Probability":                 {"Classical Probability", "Conditional Probability", "Bayes' Theorem"},
	"Set Theory and Venn Diagram": {"Union and Intersection", "Complement and Difference of Sets", "Multi Set Problems"},
}

// CategoryBaselineQuota is the Phase A/B baseline category quota of
// spec.md §4.7, summing to 12.
var CategoryBaselineQuota = map[string]int{
	"Arithmetic":               4,
	"Algebra":                  3,
	"Geometry and Mensuration": 3,
	"Number System":            1,
	"Modern Math":              1,
}
