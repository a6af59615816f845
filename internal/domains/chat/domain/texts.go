package domain

const (
	findPetHeader       = "Encontrei alguns pets que podem ser perfeitos para você! 🐾\n\n"
	findPetVerified     = "   ✅ ONG/Protetor Verificado\n"
	findPetCallToAction = "Quer ver mais detalhes de algum deles? Acesse nossa página de busca! 🔍"
	findPetFallback     = "Não encontrei pets que correspondam exatamente às suas preferências, mas temos muitos outros pets incríveis esperando por um lar! 🐾\n\nQue tal dar uma olhada na nossa página de busca? Você pode usar os filtros para encontrar o pet perfeito!"
)

const adoptionProcessText = `O processo de adoção é bem simples! 😊

1️⃣ **Encontre seu pet**: Use nossa busca para encontrar o pet ideal
2️⃣ **Crie sua conta**: Cadastre-se gratuitamente na plataforma
3️⃣ **Candidature-se**: Preencha o formulário de candidatura
4️⃣ **Aguarde contato**: O doador entrará em contato com você
5️⃣ **Conheça o pet**: Agende uma visita para conhecer seu novo amigo
6️⃣ **Adote com amor**: Leve seu novo companheiro para casa!

Tem alguma dúvida específica sobre algum desses passos?`

const adoptionDocumentsText = `Para adotar, você precisará de:

📋 **Documentos pessoais**:
• RG ou CNH
• CPF
• Comprovante de residência

🏠 **Comprovantes de moradia**:
• Comprovante de que pode ter pets no local
• Fotos do ambiente onde o pet viverá

💰 **Não há taxas**: A adoção é gratuita! 🎉

Algumas ONGs podem pedir documentos adicionais, mas isso é comunicado durante o processo.`

const adoptionCostText = `A adoção é **100% gratuita**! 🎉

Mas é importante lembrar que ter um pet envolve custos mensais:

🍽️ **Alimentação**: R$ 50-200/mês (dependendo do porte)
🏥 **Veterinário**: R$ 100-300/mês (consultas, vacinas, medicamentos)
🛁 **Higiene**: R$ 30-80/mês (banho, produtos de limpeza)
🎾 **Brinquedos**: R$ 20-50/mês

O amor e carinho que você receberá não tem preço! 💕`

const adoptionMenuText = `Ótima pergunta sobre adoção! 🐾

Posso ajudá-lo com informações sobre:
• Como funciona o processo de adoção
• Documentos necessários
• Custos envolvidos
• Cuidados básicos
• Preparação da casa

O que gostaria de saber especificamente?`

const careFeedingText = `Alimentação é fundamental para a saúde do seu pet! 🍽️

🐕 **Para cães**:
• 2-3 refeições por dia
• Ração de qualidade adequada à idade e porte
• Água sempre disponível
• Evite alimentos humanos (especialmente chocolate, cebola, uva)

🐱 **Para gatos**:
• Ração seca sempre disponível
• Ração úmida 1-2x por dia
• Água fresca em local separado da comida
• Evite leite (pode causar diarreia)

💡 **Dica**: Consulte um veterinário para a quantidade ideal!`

const careVaccinationText = `Vacinação é essencial para proteger seu pet! 💉

🐕 **Cães**:
• V8 ou V10 (anual)
• Antirrábica (anual)
• Giárdia (anual)
• Leishmaniose (em áreas endêmicas)

🐱 **Gatos**:
• V3 ou V4 (anual)
• Antirrábica (anual)
• FeLV (recomendada)

📅 **Cronograma**:
• Primeira dose: 45-60 dias
• Reforços: 21-30 dias
• Manutenção: Anual

⚠️ **Importante**: Mantenha a carteirinha de vacinação sempre atualizada!`

const careNeuteringText = `Castração é um ato de amor e responsabilidade! ❤️

✅ **Benefícios**:
• Previne doenças (câncer de mama, útero, próstata)
• Reduz comportamento agressivo
• Evita fugas e brigas
• Controla superpopulação

⏰ **Idade ideal**:
• Cães: 6-12 meses
• Gatos: 4-6 meses

🏥 **Onde fazer**:
• Clínicas veterinárias
• ONGs (preços mais acessíveis)
• Campanhas gratuitas

💰 **Custo**: R$ 100-500 (varia por região e porte)

É um investimento na saúde e bem-estar do seu pet! 🐾`

const careMenuText = `Cuidar de um pet é uma responsabilidade linda! 🐾

Posso ajudá-lo com informações sobre:
• Alimentação adequada
• Vacinação e saúde
• Castração
• Exercícios e brincadeiras
• Higiene e banho
• Comportamento

O que gostaria de saber sobre cuidados com pets?`

const techSupportText = `Estou aqui para ajudar com questões técnicas! 🔧

**Problemas comuns e soluções**:

🔐 **Não consigo fazer login**:
• Verifique se o e-mail está correto
• Use a opção "Esqueci minha senha"
• Limpe o cache do navegador

📱 **Página não carrega**:
• Atualize a página (F5)
• Verifique sua conexão com internet
• Tente em outro navegador

📝 **Não consigo cadastrar pet**:
• Verifique se está logado
• Complete todos os campos obrigatórios
• Verifique o tamanho das imagens (máx. 5MB)

💬 **Chat não funciona**:
• Atualize a página
• Verifique se JavaScript está habilitado

Se o problema persistir, entre em contato conosco! 📧`

// GenericReplies are the interchangeable answers for greetings and
// unclassified messages.
var GenericReplies = [...]string{
	"Interessante! Posso ajudá-lo de várias formas: 🐾\n\n• Encontrar pets para adoção\n• Tirar dúvidas sobre adoção\n• Informações sobre cuidados\n• Suporte técnico\n\nO que gostaria de saber?",
	"Ótima pergunta! Estou aqui para ajudar! 😊\n\nPosso:\n🔍 Sugerir pets compatíveis com seu perfil\n📋 Explicar o processo de adoção\n🐕 Dar dicas de cuidados\n🛠️ Resolver problemas técnicos\n\nComo posso ajudá-lo hoje?",
	"Adoro conversar sobre pets! 🐾\n\nMe conte mais sobre o que você precisa:\n• Quer adotar um pet?\n• Tem dúvidas sobre cuidados?\n• Precisa de ajuda na plataforma?\n\nEstou aqui para ajudar!",
}
