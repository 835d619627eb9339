package catalog

import "github.com/playperu/marcopolo/internal/marcopolo"

// countries is the reference table shipped with the game, in display order.
var countries = []marcopolo.Country{
	{Name: "Afganistán", Capital: "Kabul", Latitude: 33.8179, Longitude: 65.9979, Code: "af", Continent: Asia},
	{Name: "Albania", Capital: "Tirana", Latitude: 41.1389, Longitude: 20.0708, Code: "al", Continent: Europe},
	{Name: "Alemania", Capital: "Berlín", Latitude: 52.52, Longitude: 13.405, Code: "de", Continent: Europe},
	{Name: "Andorra", Capital: "Andorra la Vella", Latitude: 42.5, Longitude: 1.5, Code: "ad", Continent: Europe},
	{Name: "Angola", Capital: "Luanda", Latitude: -12.5, Longitude: 18.5, Code: "ao", Continent: Africa},
	{Name: "Antigua y Barbuda", Capital: "Saint John's", Latitude: 17.1167, Longitude: -61.85, Code: "ag", Continent: NorthAmerica},
	{Name: "Arabia Saudita", Capital: "Riad", Latitude: 25.0, Longitude: 45.0, Code: "sa", Continent: Asia},
	{Name: "Argelia", Capital: "Argel", Latitude: 28.0, Longitude: 3.0, Code: "dz", Continent: Africa},
	{Name: "Argentina", Capital: "Buenos Aires", Latitude: -34.6037, Longitude: -58.3816, Code: "ar", Continent: SouthAmerica},
	{Name: "Armenia", Capital: "Ereván", Latitude: 40.0, Longitude: 45.0, Code: "am", Continent: Asia},
	{Name: "Australia", Capital: "Canberra", Latitude: -35.2809, Longitude: 149.13, Code: "au", Continent: Oceania},
	{Name: "Austria", Capital: "Viena", Latitude: 48.2082, Longitude: 16.3738, Code: "at", Continent: Europe},
	{Name: "Azerbaiyán", Capital: "Bakú", Latitude: 40.5, Longitude: 47.5, Code: "az", Continent: Asia},
	{Name: "Bahamas", Capital: "Nassau", Latitude: 24.25, Longitude: -76.0, Code: "bs", Continent: NorthAmerica},
	{Name: "Bangladesh", Capital: "Daca", Latitude: 24.0, Longitude: 90.0, Code: "bd", Continent: Asia},
	{Name: "Barbados", Capital: "Bridgetown", Latitude: 13.1667, Longitude: -59.5333, Code: "bb", Continent: NorthAmerica},
	{Name: "Baréin", Capital: "Manama", Latitude: 26.0, Longitude: 50.55, Code: "bh", Continent: Asia},
	{Name: "Bélgica", Capital: "Bruselas", Latitude: 50.8503, Longitude: 4.3517, Code: "be", Continent: Europe},
	{Name: "Belice", Capital: "Belmopán", Latitude: 17.25, Longitude: -88.75, Code: "bz", Continent: NorthAmerica},
	{Name: "Benín", Capital: "Porto-Novo", Latitude: 9.5, Longitude: 2.25, Code: "bj", Continent: Africa},
	{Name: "Bielorrusia", Capital: "Minsk", Latitude: 53.0, Longitude: 28.0, Code: "by", Continent: Europe},
	{Name: "Bolivia", Capital: "La Paz", Latitude: -16.4897, Longitude: -68.1193, Code: "bo", Continent: SouthAmerica},
	{Name: "Bosnia y Herzegovina", Capital: "Sarajevo", Latitude: 44.0, Longitude: 18.0, Code: "ba", Continent: Europe},
	{Name: "Botsuana", Capital: "Gaborone", Latitude: -22.0, Longitude: 24.0, Code: "bw", Continent: Africa},
	{Name: "Brasil", Capital: "Brasilia", Latitude: -15.7801, Longitude: -47.9292, Code: "br", Continent: SouthAmerica},
	{Name: "Brunéi", Capital: "Bandar Seri Begawan", Latitude: 4.5, Longitude: 114.6667, Code: "bn", Continent: Asia},
	{Name: "Bulgaria", Capital: "Sofía", Latitude: 43.0, Longitude: 25.0, Code: "bg", Continent: Europe},
	{Name: "Burkina Faso", Capital: "Uagadugú", Latitude: 13.0, Longitude: -2.0, Code: "bf", Continent: Africa},
	{Name: "Burundi", Capital: "Buyumbura", Latitude: -3.5, Longitude: 30.0, Code: "bi", Continent: Africa},
	{Name: "Bután", Capital: "Timbu", Latitude: 27.5, Longitude: 90.5, Code: "bt", Continent: Asia},
	{Name: "Cabo Verde", Capital: "Praia", Latitude: 16.0, Longitude: -24.0, Code: "cv", Continent: Africa},
	{Name: "Camboya", Capital: "Nom Pen", Latitude: 13.0, Longitude: 105.0, Code: "kh", Continent: Asia},
	{Name: "Camerún", Capital: "Yaundé", Latitude: 6.0, Longitude: 12.0, Code: "cm", Continent: Africa},
	{Name: "Canadá", Capital: "Ottawa", Latitude: 45.4215, Longitude: -75.6972, Code: "ca", Continent: NorthAmerica},
	{Name: "Chad", Capital: "Yamena", Latitude: 15.0, Longitude: 19.0, Code: "td", Continent: Africa},
	{Name: "Chile", Capital: "Santiago", Latitude: -33.4489, Longitude: -70.6693, Code: "cl", Continent: SouthAmerica},
	{Name: "China", Capital: "Pekín", Latitude: 39.9042, Longitude: 116.4074, Code: "cn", Continent: Asia},
	{Name: "Chipre", Capital: "Nicosia", Latitude: 35.0, Longitude: 33.0, Code: "cy", Continent: Asia},
	{Name: "Ciudad del Vaticano", Capital: "Ciudad del Vaticano", Latitude: 41.9, Longitude: 12.45, Code: "va", Continent: Europe},
	{Name: "Colombia", Capital: "Bogotá", Latitude: 4.711, Longitude: -74.0721, Code: "co", Continent: SouthAmerica},
	{Name: "Comoras", Capital: "Moroni", Latitude: -12.1667, Longitude: 44.25, Code: "km", Continent: Africa},
	{Name: "Congo", Capital: "Kinshasa", Latitude: -4.0, Longitude: 15.0, Code: "cg", Continent: Africa},
	{Name: "Corea del Norte", Capital: "Pyongyang", Latitude: 39.0, Longitude: 125.75, Code: "kp", Continent: Asia},
	{Name: "Corea del Sur", Capital: "Seúl", Latitude: 37.0, Longitude: 127.5, Code: "kr", Continent: Asia},
	{Name: "Costa de Marfil", Capital: "Yamusukro", Latitude: 8.0, Longitude: -5.0, Code: "ci", Continent: Africa},
	{Name: "Costa Rica", Capital: "San José", Latitude: 9.9281, Longitude: -84.0907, Code: "cr", Continent: NorthAmerica},
	{Name: "Croacia", Capital: "Zagreb", Latitude: 45.1667, Longitude: 15.5, Code: "hr", Continent: Europe},
	{Name: "Cuba", Capital: "La Habana", Latitude: 23.1136, Longitude: -82.3666, Code: "cu", Continent: NorthAmerica},
	{Name: "Dinamarca", Capital: "Copenhague", Latitude: 55.6761, Longitude: 12.5683, Code: "dk", Continent: Europe},
	{Name: "Dominica", Capital: "Roseau", Latitude: 15.4167, Longitude: -61.3333, Code: "dm", Continent: NorthAmerica},
	{Name: "Ecuador", Capital: "Quito", Latitude: -0.1807, Longitude: -78.4678, Code: "ec", Continent: SouthAmerica},
	{Name: "Egipto", Capital: "El Cairo", Latitude: 30.0444, Longitude: 31.2357, Code: "eg", Continent: Africa},
	{Name: "El Salvador", Capital: "San Salvador", Latitude: 13.6929, Longitude: -89.2182, Code: "sv", Continent: NorthAmerica},
	{Name: "Emiratos Árabes Unidos", Capital: "Abu Dabi", Latitude: 24.0, Longitude: 54.0, Code: "ae", Continent: Asia},
	{Name: "Eritrea", Capital: "Asmara", Latitude: 15.0, Longitude: 39.0, Code: "er", Continent: Africa},
	{Name: "Eslovaquia", Capital: "Bratislava", Latitude: 48.6667, Longitude: 19.5, Code: "sk", Continent: Europe},
	{Name: "Eslovenia", Capital: "Liubliana", Latitude: 46.0, Longitude: 15.0, Code: "si", Continent: Europe},
	{Name: "España", Capital: "Madrid", Latitude: 40.4168, Longitude: -3.7038, Code: "es", Continent: Europe},
	{Name: "Estados Unidos", Capital: "Washington D.C.", Latitude: 38.9072, Longitude: -77.0369, Code: "us", Continent: NorthAmerica},
	{Name: "Estonia", Capital: "Tallin", Latitude: 59.0, Longitude: 26.0, Code: "ee", Continent: Europe},
	{Name: "Eswatini", Capital: "Mbabane", Latitude: -26.5, Longitude: 31.5, Code: "sz", Continent: Africa},
	{Name: "Etiopía", Capital: "Adís Abeba", Latitude: 9.032, Longitude: 38.7469, Code: "et", Continent: Africa},
	{Name: "Filipinas", Capital: "Manila", Latitude: 13.0, Longitude: 122.0, Code: "ph", Continent: Asia},
	{Name: "Finlandia", Capital: "Helsinki", Latitude: 60.1699, Longitude: 24.9384, Code: "fi", Continent: Europe},
	{Name: "Fiyi", Capital: "Suva", Latitude: -18.0, Longitude: 175.0, Code: "fj", Continent: Oceania},
	{Name: "Francia", Capital: "París", Latitude: 48.8566, Longitude: 2.3522, Code: "fr", Continent: Europe},
	{Name: "Gabón", Capital: "Libreville", Latitude: -1.0, Longitude: 11.75, Code: "ga", Continent: Africa},
	{Name: "Gambia", Capital: "Banjul", Latitude: 13.4667, Longitude: -16.5667, Code: "gm", Continent: Africa},
	{Name: "Georgia", Capital: "Tiflis", Latitude: 42.0, Longitude: 43.5, Code: "ge", Continent: Asia},
	{Name: "Ghana", Capital: "Acra", Latitude: 8.0, Longitude: -2.0, Code: "gh", Continent: Africa},
	{Name: "Granada", Capital: "Saint George's", Latitude: 12.1167, Longitude: -61.6667, Code: "gd", Continent: NorthAmerica},
	{Name: "Grecia", Capital: "Atenas", Latitude: 37.9838, Longitude: 23.7275, Code: "gr", Continent: Europe},
	{Name: "Guatemala", Capital: "Ciudad de Guatemala", Latitude: 14.6349, Longitude: -90.5069, Code: "gt", Continent: NorthAmerica},
	{Name: "Guinea-Bisáu", Capital: "Bisáu", Latitude: 12.0, Longitude: -15.0, Code: "gw", Continent: Africa},
	{Name: "Guinea", Capital: "Conakry", Latitude: 11.0, Longitude: -10.0, Code: "gn", Continent: Africa},
	{Name: "Guinea Ecuatorial", Capital: "Malabo", Latitude: 2.0, Longitude: 10.0, Code: "gq", Continent: Africa},
	{Name: "Guyana", Capital: "Georgetown", Latitude: 5.0, Longitude: -59.0, Code: "gy", Continent: SouthAmerica},
	{Name: "Haití", Capital: "Puerto Príncipe", Latitude: 19.0, Longitude: -72.4167, Code: "ht", Continent: NorthAmerica},
	{Name: "Honduras", Capital: "Tegucigalpa", Latitude: 14.0723, Longitude: -87.1921, Code: "hn", Continent: NorthAmerica},
	{Name: "Hungría", Capital: "Budapest", Latitude: 47.0, Longitude: 20.0, Code: "hu", Continent: Europe},
	{Name: "India", Capital: "Nueva Delhi", Latitude: 28.6139, Longitude: 77.209, Code: "in", Continent: Asia},
	{Name: "Indonesia", Capital: "Yakarta", Latitude: -5.0, Longitude: 120.0, Code: "id", Continent: Asia},
	{Name: "Irán", Capital: "Teherán", Latitude: 32.0, Longitude: 53.0, Code: "ir", Continent: Asia},
	{Name: "Iraq", Capital: "Bagdad", Latitude: 33.0, Longitude: 44.0, Code: "iq", Continent: Asia},
	{Name: "Irlanda", Capital: "Dublín", Latitude: 53.0, Longitude: -8.0, Code: "ie", Continent: Europe},
	{Name: "Islandia", Capital: "Reikiavik", Latitude: 65.0, Longitude: -18.0, Code: "is", Continent: Europe},
	{Name: "Islas Marshall", Capital: "Majuro", Latitude: 7.09, Longitude: 171.38, Code: "mh", Continent: Oceania},
	{Name: "Islas Salomón", Capital: "Honiara", Latitude: -8.0, Longitude: 159.0, Code: "sb", Continent: Oceania},
	{Name: "Israel", Capital: "Jerusalén", Latitude: 31.5, Longitude: 34.75, Code: "il", Continent: Asia},
	{Name: "Italia", Capital: "Roma", Latitude: 41.9028, Longitude: 12.4964, Code: "it", Continent: Europe},
	{Name: "Jamaica", Capital: "Kingston", Latitude: 18.25, Longitude: -77.5, Code: "jm", Continent: NorthAmerica},
	{Name: "Japón", Capital: "Tokio", Latitude: 35.6762, Longitude: 139.6503, Code: "jp", Continent: Asia},
	{Name: "Jordania", Capital: "Amán", Latitude: 31.0, Longitude: 36.0, Code: "jo", Continent: Asia},
	{Name: "Kazajistán", Capital: "Astaná", Latitude: 48.0, Longitude: 68.0, Code: "kz", Continent: Asia},
	{Name: "Kenia", Capital: "Nairobi", Latitude: -1.2921, Longitude: 36.8219, Code: "ke", Continent: Africa},
	{Name: "Kirguistán", Capital: "Biskek", Latitude: 41.0, Longitude: 75.0, Code: "kg", Continent: Asia},
	{Name: "Kiribati", Capital: "Tarawa", Latitude: 1.35, Longitude: 172.9333, Code: "ki", Continent: Oceania},
	{Name: "Laos", Capital: "Vientián", Latitude: 18.0, Longitude: 105.0, Code: "la", Continent: Asia},
	{Name: "Lesoto", Capital: "Maseru", Latitude: -29.5, Longitude: 28.5, Code: "ls", Continent: Africa},
	{Name: "Letonia", Capital: "Riga", Latitude: 57.0, Longitude: 25.0, Code: "lv", Continent: Europe},
	{Name: "Líbano", Capital: "Beirut", Latitude: 33.8333, Longitude: 35.8333, Code: "lb", Continent: Asia},
	{Name: "Liberia", Capital: "Monrovia", Latitude: 6.5, Longitude: -9.5, Code: "lr", Continent: Africa},
	{Name: "Libia", Capital: "Trípoli", Latitude: 25.0, Longitude: 17.0, Code: "ly", Continent: Africa},
	{Name: "Liechtenstein", Capital: "Vaduz", Latitude: 47.1667, Longitude: 9.5333, Code: "li", Continent: Europe},
	{Name: "Lituania", Capital: "Vilna", Latitude: 56.0, Longitude: 24.0, Code: "lt", Continent: Europe},
	{Name: "Luxemburgo", Capital: "Luxemburgo", Latitude: 49.75, Longitude: 6.1667, Code: "lu", Continent: Europe},
	{Name: "Macedonia del Norte", Capital: "Skopie", Latitude: 41.8333, Longitude: 22.0, Code: "mk", Continent: Europe},
	{Name: "Madagascar", Capital: "Antananarivo", Latitude: -20.0, Longitude: 47.0, Code: "mg", Continent: Africa},
	{Name: "Malasia", Capital: "Kuala Lumpur", Latitude: 2.5, Longitude: 112.5, Code: "my", Continent: Asia},
	{Name: "Malaui", Capital: "Lilongüe", Latitude: -13.5, Longitude: 34.0, Code: "mw", Continent: Africa},
	{Name: "Maldivas", Capital: "Malé", Latitude: 3.25, Longitude: 73.0, Code: "mv", Continent: Asia},
	{Name: "Malí", Capital: "Bamako", Latitude: 17.0, Longitude: -4.0, Code: "ml", Continent: Africa},
	{Name: "Malta", Capital: "La Valeta", Latitude: 35.8333, Longitude: 14.5833, Code: "mt", Continent: Europe},
	{Name: "Marruecos", Capital: "Rabat", Latitude: 34.0209, Longitude: -6.8416, Code: "ma", Continent: Africa},
	{Name: "Mauricio", Capital: "Port Louis", Latitude: -20.2833, Longitude: 57.55, Code: "mu", Continent: Africa},
	{Name: "Mauritania", Capital: "Nuakchot", Latitude: 20.0, Longitude: -12.0, Code: "mr", Continent: Africa},
	{Name: "México", Capital: "Ciudad de México", Latitude: 19.4326, Longitude: -99.1332, Code: "mx", Continent: NorthAmerica},
	{Name: "Micronesia", Capital: "Palikir", Latitude: 6.9167, Longitude: 158.15, Code: "fm", Continent: Oceania},
	{Name: "Moldavia", Capital: "Chisináu", Latitude: 47.0, Longitude: 29.0, Code: "md", Continent: Europe},
	{Name: "Mónaco", Capital: "Mónaco", Latitude: 43.7333, Longitude: 7.4, Code: "mc", Continent: Europe},
	{Name: "Mongolia", Capital: "Ulán Bator", Latitude: 46.0, Longitude: 105.0, Code: "mn", Continent: Asia},
	{Name: "Montenegro", Capital: "Podgorica", Latitude: 42.5, Longitude: 19.3, Code: "me", Continent: Europe},
	{Name: "Mozambique", Capital: "Maputo", Latitude: -18.25, Longitude: 35.0, Code: "mz", Continent: Africa},
	{Name: "Myanmar", Capital: "Naypyidaw", Latitude: 19.7515, Longitude: 96.1622, Code: "mm", Continent: Asia},
	{Name: "Namibia", Capital: "Windhoek", Latitude: -22.0, Longitude: 17.0, Code: "na", Continent: Africa},
	{Name: "Nauru", Capital: "Yaren", Latitude: -0.5228, Longitude: 166.934, Code: "nr", Continent: Oceania},
	{Name: "Nepal", Capital: "Katmandú", Latitude: 28.0, Longitude: 84.0, Code: "np", Continent: Asia},
	{Name: "Nicaragua", Capital: "Managua", Latitude: 12.1364, Longitude: -86.2514, Code: "ni", Continent: NorthAmerica},
	{Name: "Níger", Capital: "Niamey", Latitude: 16.0, Longitude: 8.0, Code: "ne", Continent: Africa},
	{Name: "Nigeria", Capital: "Abuya", Latitude: 9.0765, Longitude: 7.3986, Code: "ng", Continent: Africa},
	{Name: "Noruega", Capital: "Oslo", Latitude: 59.9139, Longitude: 10.7522, Code: "no", Continent: Europe},
	{Name: "Nueva Zelanda", Capital: "Wellington", Latitude: -41.0, Longitude: 174.0, Code: "nz", Continent: Oceania},
	{Name: "Omán", Capital: "Mascate", Latitude: 21.0, Longitude: 57.0, Code: "om", Continent: Asia},
	{Name: "Países Bajos", Capital: "Ámsterdam", Latitude: 52.3676, Longitude: 4.9041, Code: "nl", Continent: Europe},
	{Name: "Pakistán", Capital: "Islamabad", Latitude: 30.0, Longitude: 70.0, Code: "pk", Continent: Asia},
	{Name: "Palaos", Capital: "Melekeok", Latitude: 7.5, Longitude: 134.5, Code: "pw", Continent: Oceania},
	{Name: "Palestina", Capital: "Jerusalén Este", Latitude: 32.0, Longitude: 35.25, Code: "ps", Continent: Asia},
	{Name: "Panamá", Capital: "Ciudad de Panamá", Latitude: 8.9936, Longitude: -79.5197, Code: "pa", Continent: NorthAmerica},
	{Name: "Papúa Nueva Guinea", Capital: "Port Moresby", Latitude: -6.0, Longitude: 147.0, Code: "pg", Continent: Oceania},
	{Name: "Paraguay", Capital: "Asunción", Latitude: -25.2637, Longitude: -57.5759, Code: "py", Continent: SouthAmerica},
	{Name: "Perú", Capital: "Lima", Latitude: -12.0464, Longitude: -77.0428, Code: "pe", Continent: SouthAmerica},
	{Name: "Polonia", Capital: "Varsovia", Latitude: 52.2297, Longitude: 21.0122, Code: "pl", Continent: Europe},
	{Name: "Portugal", Capital: "Lisboa", Latitude: 38.7223, Longitude: -9.1393, Code: "pt", Continent: Europe},
	{Name: "Qatar", Capital: "Doha", Latitude: 25.5, Longitude: 51.25, Code: "qa", Continent: Asia},
	{Name: "Reino Unido", Capital: "Londres", Latitude: 51.5074, Longitude: -0.1278, Code: "gb", Continent: Europe},
	{Name: "República Centroafricana", Capital: "Bangui", Latitude: 7.0, Longitude: 21.0, Code: "cf", Continent: Africa},
	{Name: "República Checa", Capital: "Praga", Latitude: 49.75, Longitude: 15.5, Code: "cz", Continent: Europe},
	{Name: "República Democrática del Congo", Capital: "Brazzaville", Latitude: -1.0, Longitude: 15.0, Code: "cd", Continent: Africa},
	{Name: "República Dominicana", Capital: "Santo Domingo", Latitude: 18.4861, Longitude: -69.9312, Code: "do", Continent: NorthAmerica},
	{Name: "Ruanda", Capital: "Kigali", Latitude: -2.0, Longitude: 30.0, Code: "rw", Continent: Africa},
	{Name: "Rumania", Capital: "Bucarest", Latitude: 46.0, Longitude: 25.0, Code: "ro", Continent: Europe},
	{Name: "Rusia", Capital: "Moscú", Latitude: 55.7558, Longitude: 37.6173, Code: "ru", Continent: Europe},
	{Name: "Samoa", Capital: "Apia", Latitude: -13.5833, Longitude: -172.3333, Code: "ws", Continent: Oceania},
	{Name: "San Cristóbal y Nieves", Capital: "Basseterre", Latitude: 17.3333, Longitude: -62.75, Code: "kn", Continent: NorthAmerica},
	{Name: "San Marino", Capital: "San Marino", Latitude: 43.7667, Longitude: 12.4167, Code: "sm", Continent: Europe},
	{Name: "San Vicente y las Granadinas", Capital: "Kingstown", Latitude: 13.25, Longitude: -61.2, Code: "vc", Continent: NorthAmerica},
	{Name: "Santa Lucía", Capital: "Castries", Latitude: 13.8833, Longitude: -61.1333, Code: "lc", Continent: NorthAmerica},
	{Name: "Santo Tomé y Príncipe", Capital: "Santo Tomé", Latitude: 1.0, Longitude: 7.0, Code: "st", Continent: Africa},
	{Name: "Senegal", Capital: "Dakar", Latitude: 14.0, Longitude: -14.0, Code: "sn", Continent: Africa},
	{Name: "Serbia", Capital: "Belgrado", Latitude: 44.0, Longitude: 21.0, Code: "rs", Continent: Europe},
	{Name: "Seychelles", Capital: "Victoria", Latitude: -4.5833, Longitude: 55.6667, Code: "sc", Continent: Africa},
	{Name: "Sierra Leona", Capital: "Freetown", Latitude: 8.5, Longitude: -11.5, Code: "sl", Continent: Africa},
	{Name: "Singapur", Capital: "Singapur", Latitude: 1.3667, Longitude: 103.8, Code: "sg", Continent: Asia},
	{Name: "Siria", Capital: "Damasco", Latitude: 35.0, Longitude: 38.0, Code: "sy", Continent: Asia},
	{Name: "Somalia", Capital: "Mogadiscio", Latitude: 10.0, Longitude: 49.0, Code: "so", Continent: Africa},
	{Name: "Sri Lanka", Capital: "Colombo", Latitude: 7.0, Longitude: 81.0, Code: "lk", Continent: Asia},
	{Name: "Sudáfrica", Capital: "Pretoria", Latitude: -25.7461, Longitude: 28.1881, Code: "za", Continent: Africa},
	{Name: "Sudán del Sur", Capital: "Yuba", Latitude: 7.0, Longitude: 30.0, Code: "ss", Continent: Africa},
	{Name: "Sudán", Capital: "Jartum", Latitude: 15.0, Longitude: 30.0, Code: "sd", Continent: Africa},
	{Name: "Suecia", Capital: "Estocolmo", Latitude: 59.3293, Longitude: 18.0686, Code: "se", Continent: Europe},
	{Name: "Suiza", Capital: "Berna", Latitude: 46.948, Longitude: 7.4474, Code: "ch", Continent: Europe},
	{Name: "Surinam", Capital: "Paramaribo", Latitude: 4.0, Longitude: -56.0, Code: "sr", Continent: SouthAmerica},
	{Name: "Tailandia", Capital: "Bangkok", Latitude: 15.0, Longitude: 100.0, Code: "th", Continent: Asia},
	{Name: "Taiwan", Capital: "Taipei", Latitude: 25.0, Longitude: 121.0, Code: "tw", Continent: Asia},
	{Name: "Tanzania", Capital: "Dodoma", Latitude: -6.0, Longitude: 35.0, Code: "tz", Continent: Africa},
	{Name: "Tayikistán", Capital: "Dusambé", Latitude: 39.0, Longitude: 71.0, Code: "tj", Continent: Asia},
	{Name: "Timor Oriental", Capital: "Dili", Latitude: -8.55, Longitude: 125.5167, Code: "tl", Continent: Asia},
	{Name: "Togo", Capital: "Lomé", Latitude: 8.0, Longitude: 1.1667, Code: "tg", Continent: Africa},
	{Name: "Tonga", Capital: "Nukualofa", Latitude: -20.0, Longitude: -175.0, Code: "to", Continent: Oceania},
	{Name: "Trinidad y Tobago", Capital: "Puerto España", Latitude: 11.0, Longitude: -61.0, Code: "tt", Continent: NorthAmerica},
	{Name: "Túnez", Capital: "Túnez", Latitude: 34.0, Longitude: 9.0, Code: "tn", Continent: Africa},
	{Name: "Turkmenistán", Capital: "Asjabad", Latitude: 40.0, Longitude: 60.0, Code: "tm", Continent: Asia},
	{Name: "Turquía", Capital: "Ankara", Latitude: 39.9334, Longitude: 32.8597, Code: "tr", Continent: Asia},
	{Name: "Tuvalu", Capital: "Funafuti", Latitude: -8.0, Longitude: 178.0, Code: "tv", Continent: Oceania},
	{Name: "Ucrania", Capital: "Kiev", Latitude: 50.4501, Longitude: 30.5234, Code: "ua", Continent: Europe},
	{Name: "Uganda", Capital: "Kampala", Latitude: 1.0, Longitude: 32.0, Code: "ug", Continent: Africa},
	{Name: "Uruguay", Capital: "Montevideo", Latitude: -34.9011, Longitude: -56.1645, Code: "uy", Continent: SouthAmerica},
	{Name: "Uzbekistán", Capital: "Taskent", Latitude: 41.0, Longitude: 64.0, Code: "uz", Continent: Asia},
	{Name: "Vanuatu", Capital: "Port Vila", Latitude: -16.0, Longitude: 167.0, Code: "vu", Continent: Oceania},
	{Name: "Venezuela", Capital: "Caracas", Latitude: 10.4806, Longitude: -66.9036, Code: "ve", Continent: SouthAmerica},
	{Name: "Vietnam", Capital: "Hanói", Latitude: 16.0, Longitude: 106.0, Code: "vn", Continent: Asia},
	{Name: "Yemen", Capital: "Saná", Latitude: 15.0, Longitude: 48.0, Code: "ye", Continent: Asia},
	{Name: "Yibuti", Capital: "Yibuti", Latitude: 11.5, Longitude: 43.0, Code: "dj", Continent: Africa},
	{Name: "Zambia", Capital: "Lusaka", Latitude: -15.0, Longitude: 30.0, Code: "zm", Continent: Africa},
	{Name: "Zimbabue", Capital: "Harare", Latitude: -20.0, Longitude: 30.0, Code: "zw", Continent: Africa},
}
