package heatmap

// scenarioDataset is the two-record sample from January and February 1753.
func scenarioDataset() Dataset {
	return Dataset{
		BaseTemperature: 8.66,
		Records: []Record{
			{Year: 1753, Month: 1, Variance: -1.366},
			{Year: 1753, Month: 2, Variance: -3.720},
		},
	}
}

// spanDataset covers several years and every month.
func spanDataset() Dataset {
	ds := Dataset{BaseTemperature: 8.66}
	for year := 1753; year <= 1760; year++ {
		for month := 1; month <= 12; month++ {
			v := float64(year-1756)*0.5 + float64(month-6)*0.1
			ds.Records = append(ds.Records, Record{Year: year, Month: month, Variance: v})
		}
	}
	return ds
}
