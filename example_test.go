package jalali_test

import (
	"errors"
	"fmt"

	"github.com/rabitt1ove/jalali"
)

func ExampleToJalali() {
	jy, jm, jd, _ := jalali.ToJalali(2024, 3, 20)
	fmt.Println(jy, jm, jd)
	// Output: 1403 1 1
}

func ExampleToGregorian() {
	gy, gm, gd, _ := jalali.ToGregorian(1403, 12, 30)
	fmt.Println(gy, gm, gd)
	// Output: 2025 3 20
}

func ExampleIsLeapYear() {
	fmt.Println(jalali.IsLeapYear(1403))
	fmt.Println(jalali.IsLeapYear(1404))
	// Output:
	// true
	// false
}

func ExampleParse() {
	d, err := jalali.Parse("1403/01/01 3:30 pm")
	if err != nil {
		panic(err)
	}
	d.WithLocale(jalali.English)
	fmt.Println(d.Format("dddd DD MMMM YYYY hh:mm A"))
	fmt.Println(d.Gregorian())
	// Output:
	// Wednesday 01 Farvardin 1403 03:30 PM
	// 2024-03-20 15:30:00
}

func ExampleDate_Format() {
	d := jalali.MustParse("1403/01/01")
	fmt.Println(d.Format("dddd DD MMMM YYYY"))
	// Output: چهارشنبه ۰۱ فروردین ۱۴۰۳
}

func ExampleDate_AddInPlace() {
	d := jalali.MustParse("1403/06/31").WithLocale(jalali.English)
	d.AddInPlace(jalali.Months, 1) // Mehr has 30 days
	fmt.Println(d.Format("YYYY/MM/DD"))
	d.AddInPlace(jalali.Months, -1)
	fmt.Println(d.Format("YYYY/MM/DD"))
	// Output:
	// 1403/07/30
	// 1403/06/30
}

func ExampleDate_StartOf() {
	d := jalali.MustParse("1403/05/15 10:20").WithLocale(jalali.English)
	fmt.Println(d.StartOf(jalali.Weeks).Format("dddd YYYY/MM/DD"))
	fmt.Println(d.EndOf(jalali.Months).Format("YYYY/MM/DD HH:mm:ss.SSS"))
	// Output:
	// Saturday 1403/05/13
	// 1403/05/31 23:59:59.999
}

func ExampleDate_WeekNumber() {
	for _, text := range []string{"1403/01/01", "1403/01/04", "1403/01/11"} {
		fmt.Println(text, jalali.MustParse(text).WeekNumber())
	}
	// Output:
	// 1403/01/01 0
	// 1403/01/04 1
	// 1403/01/11 2
}

func ExampleDate_Err() {
	d := jalali.MustParse("3177/12/29")
	d.AddInPlace(jalali.Days, 1).SetHour(12)
	fmt.Println(errors.Is(d.Err(), jalali.ErrInvalidYear))
	fmt.Println(d.WithLocale(jalali.English))
	// Output:
	// true
	// 3177/12/29 00:00:00
}

func ExampleLookupLocale() {
	loc, err := jalali.LookupLocale("en-US")
	if err != nil {
		panic(err)
	}
	fmt.Println(loc, jalali.MustParse("1403/07/01").WithLocale(loc).Format("DD MMMM"))
	// Output: en 01 Mehr
}
